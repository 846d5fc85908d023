package subtitle

import "testing"

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		ms       float64
		expected string
	}{
		{0, "00:00:00,000"},
		{1, "00:00:00,001"},
		{999, "00:00:00,999"},
		{1000, "00:00:01,000"},
		{61000, "00:01:01,000"},
		{3661001, "01:01:01,001"},
		{5500, "00:00:05,500"},
		{7000, "00:00:07,000"},
		// Fractional milliseconds truncate.
		{1500.9, "00:00:01,500"},
		{86399999, "23:59:59,999"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.ms); got != tt.expected {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.ms, got, tt.expected)
		}
	}
}
