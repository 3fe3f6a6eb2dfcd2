package util

import "testing"

func TestHumanFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{13002342, "12.4 MB"},
		{1073741824, "1.0 GB"},
	}
	for _, tt := range tests {
		if got := HumanFileSize(tt.size); got != tt.want {
			t.Errorf("HumanFileSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}
