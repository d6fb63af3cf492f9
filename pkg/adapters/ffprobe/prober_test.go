package ffprobe

import (
	"math"
	"testing"
)

func TestParseRational(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"integer fraction", "60/1", 60},
		{"ntsc rate", "30000/1001", 29.97002997002997},
		{"plain number", "25", 25},
		{"zero denominator", "0/0", 0},
		{"empty", "", 0},
		{"garbage", "abc", 0},
		{"garbage denominator", "30/abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseRational(tt.input)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseRational(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
