package validation

import "testing"

func TestNormalizeCourseCode(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"cs101", "CS101", false},
		{"  math2040 ", "MATH2040", false},
		{"CS101", "CS101", false},
		{"c1", "", true},
		{"COURSE", "", true},
		{"101CS", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeCourseCode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeCourseCode(%q): expected error, got %q", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeCourseCode(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeCourseCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
