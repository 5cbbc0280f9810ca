package controllers

import (
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantFirst string
		wantLast  string
	}{
		{
			name:      "mid month",
			now:       time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC),
			wantFirst: "2025-03-01",
			wantLast:  "2025-03-31",
		},
		{
			name:      "february non leap",
			now:       time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			wantFirst: "2025-02-01",
			wantLast:  "2025-02-28",
		},
		{
			name:      "february leap year",
			now:       time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC),
			wantFirst: "2024-02-01",
			wantLast:  "2024-02-29",
		},
		{
			name:      "december wraps the year",
			now:       time.Date(2025, time.December, 31, 12, 0, 0, 0, time.UTC),
			wantFirst: "2025-12-01",
			wantLast:  "2025-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := monthRange(tt.now)
			if first != tt.wantFirst {
				t.Errorf("first = %q, want %q", first, tt.wantFirst)
			}
			if last != tt.wantLast {
				t.Errorf("last = %q, want %q", last, tt.wantLast)
			}
		})
	}
}

func TestMonthRangeIsLexicallyOrdered(t *testing.T) {
	// The dashboard compares ISO date strings lexically; the range bounds
	// must sort the same way they compare as dates.
	first, last := monthRange(time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC))
	if !(first < last) {
		t.Errorf("expected %q < %q", first, last)
	}
	if !(first <= "2025-09-10" && "2025-09-10" <= last) {
		t.Error("a date inside the month should fall within the bounds")
	}
}
