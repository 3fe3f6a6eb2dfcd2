package service

import (
	"edupiyasa_backend/internal/util"
	"errors"
	"testing"
)

func TestCountCorrectMatches(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		matches map[string]string
		want    int
		wantErr error
	}{
		{
			name: "all correct",
			n:    3,
			matches: map[string]string{
				"right-0": "left-0",
				"right-1": "left-1",
				"right-2": "left-2",
			},
			want: 3,
		},
		{
			name: "two swapped",
			n:    3,
			matches: map[string]string{
				"right-0": "left-1",
				"right-1": "left-0",
				"right-2": "left-2",
			},
			want: 1,
		},
		{
			name: "all wrong",
			n:    2,
			matches: map[string]string{
				"right-0": "left-1",
				"right-1": "left-0",
			},
			want: 0,
		},
		{
			name: "incomplete board rejected",
			n:    3,
			matches: map[string]string{
				"right-0": "left-0",
			},
			wantErr: util.ErrIncompleteMatches,
		},
		{
			name:    "empty board rejected",
			n:       1,
			matches: map[string]string{},
			wantErr: util.ErrIncompleteMatches,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CountCorrectMatches(tt.n, tt.matches)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("CountCorrectMatches() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("CountCorrectMatches() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("CountCorrectMatches() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Duplicate right-hand texts keep positional answers: the board is graded by
// slot index, never by text.
func TestCountCorrectMatchesPositional(t *testing.T) {
	matches := map[string]string{
		"right-0": "left-1",
		"right-1": "left-0",
	}
	got, err := CountCorrectMatches(2, matches)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("swapped identical texts should grade by position, got %d correct", got)
	}
}

func TestMatchingScore(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		points  int
		want    int
	}{
		{"perfect", 3, 3, 50, 50},
		{"two of three floors", 2, 3, 50, 33},
		{"one of three floors", 1, 3, 50, 16},
		{"none", 0, 3, 50, 0},
		{"zero total", 0, 0, 50, 0},
		{"half of odd points", 1, 2, 25, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchingScore(tt.correct, tt.total, tt.points); got != tt.want {
				t.Errorf("MatchingScore(%d, %d, %d) = %d, want %d", tt.correct, tt.total, tt.points, got, tt.want)
			}
		})
	}
}
