package sources

import "testing"

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"PT1H2M3S", 3723},
		{"PT45S", 45},
		{"PT5M", 300},
		{"PT1H", 3600},
		{"PT30S", 30},
		{"PT25M", 1500},
		{"PT1M30S", 90},
		{"PT2H", 7200},
		{"PT", 0},
		{"", 0},
		{"P1DT2H", 0},  // day component not part of the video pattern
		{"PT5M extra", 0},
		{"5M", 0},
		{"garbage", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseISODuration(tt.in); got != tt.want {
				t.Errorf("ParseISODuration(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
