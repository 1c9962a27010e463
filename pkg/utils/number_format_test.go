package utils

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0"},
		{50, "50"},
		{1234, "1,234"},
		{50000000, "50,000,000"},
		{99.99, "99.99"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.input); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, 期望 %q", tt.input, got, tt.want)
		}
	}
}
