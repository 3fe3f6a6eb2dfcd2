package service

import (
	"edupiyasa_backend/internal/model"
	"testing"
)

func textbook(title string, grade int, subjectID uint, medium string) model.Textbook {
	book := model.Textbook{Title: title, Grade: grade, Medium: medium}
	if subjectID != 0 {
		book.SubjectID = &subjectID
	}
	return book
}

func titles(books []model.Textbook) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func TestFilterTextbooks(t *testing.T) {
	library := []model.Textbook{
		textbook("Maths G10 Sinhala", 10, 1, model.MediumSinhala),
		textbook("Maths G10 English", 10, 1, model.MediumEnglish),
		textbook("Science G10 English", 10, 2, model.MediumEnglish),
		textbook("Maths G11 English", 11, 1, model.MediumEnglish),
		textbook("Orphan G10 English", 10, 0, model.MediumEnglish),
	}

	tests := []struct {
		name   string
		filter TextbookFilter
		want   []string
	}{
		{
			name:   "no filters returns everything",
			filter: TextbookFilter{Subject: "all", Medium: "all"},
			want:   []string{"Maths G10 Sinhala", "Maths G10 English", "Science G10 English", "Maths G11 English", "Orphan G10 English"},
		},
		{
			name:   "grade only",
			filter: TextbookFilter{Grade: 11, Subject: "all", Medium: "all"},
			want:   []string{"Maths G11 English"},
		},
		{
			name:   "grade and subject and medium combine with AND",
			filter: TextbookFilter{Grade: 10, Subject: "1", Medium: model.MediumEnglish},
			want:   []string{"Maths G10 English"},
		},
		{
			name:   "subject filter drops books without a subject",
			filter: TextbookFilter{Subject: "1", Medium: "all"},
			want:   []string{"Maths G10 Sinhala", "Maths G10 English", "Maths G11 English"},
		},
		{
			name:   "medium only",
			filter: TextbookFilter{Subject: "all", Medium: model.MediumSinhala},
			want:   []string{"Maths G10 Sinhala"},
		},
		{
			name:   "no match yields empty slice",
			filter: TextbookFilter{Grade: 13, Subject: "all", Medium: "all"},
			want:   []string{},
		},
		{
			name:   "malformed subject id matches nothing",
			filter: TextbookFilter{Subject: "abc", Medium: "all"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTextbooks(library, tt.filter)
			if got == nil {
				t.Fatal("FilterTextbooks() returned nil, want empty slice")
			}
			gotTitles := titles(got)
			if len(gotTitles) != len(tt.want) {
				t.Fatalf("FilterTextbooks() = %v, want %v", gotTitles, tt.want)
			}
			for i := range tt.want {
				if gotTitles[i] != tt.want[i] {
					t.Errorf("FilterTextbooks()[%d] = %q, want %q", i, gotTitles[i], tt.want[i])
				}
			}
		})
	}
}
