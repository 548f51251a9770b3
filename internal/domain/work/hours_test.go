package work

import (
	"math"
	"testing"
	"time"
)

func TestElapsedHours(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		start, end   time.Time
		breakMinutes int
		want         float64
	}{
		{
			name:  "plain ten hour shift",
			start: day.Add(7 * time.Hour),
			end:   day.Add(17 * time.Hour),
			want:  10,
		},
		{
			name:         "break deducted",
			start:        day.Add(7 * time.Hour),
			end:          day.Add(17 * time.Hour),
			breakMinutes: 30,
			want:         9.5,
		},
		{
			name:  "crossing midnight",
			start: day.Add(22 * time.Hour),
			end:   day.Add(6 * time.Hour), // 06:00 reads as next day
			want:  8,
		},
		{
			name:         "oversized break clamps to zero",
			start:        day.Add(9 * time.Hour),
			end:          day.Add(10 * time.Hour),
			breakMinutes: 120,
			want:         0,
		},
		{
			name:  "zero length shift",
			start: day.Add(9 * time.Hour),
			end:   day.Add(9 * time.Hour),
			want:  0,
		},
	}

	for _, c := range cases {
		got := ElapsedHours(c.start, c.end, c.breakMinutes)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("%s: ElapsedHours = %v, want %v", c.name, got, c.want)
		}
		if got < 0 {
			t.Errorf("%s: ElapsedHours went negative: %v", c.name, got)
		}
	}
}

func TestSplitRegularOvertime(t *testing.T) {
	cases := []struct {
		total, threshold float64
		regular, ot      float64
	}{
		{12, 10, 10, 2},
		{10, 10, 10, 0},
		{7.5, 10, 7.5, 0},
		{0, 10, 0, 0},
		{13.25, 10, 10, 3.25},
	}

	for _, c := range cases {
		regular, ot := SplitRegularOvertime(c.total, c.threshold)
		if regular != c.regular || ot != c.ot {
			t.Errorf("SplitRegularOvertime(%v, %v) = (%v, %v), want (%v, %v)",
				c.total, c.threshold, regular, ot, c.regular, c.ot)
		}
		// regular + overtime must partition the total exactly
		if math.Abs((regular+ot)-c.total) > 1e-9 {
			t.Errorf("SplitRegularOvertime(%v, %v): regular+overtime = %v, want %v",
				c.total, c.threshold, regular+ot, c.total)
		}
	}
}

func TestElapsedHoursDeterministic(t *testing.T) {
	start := time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC)
	end := start.Add(11*time.Hour + 17*time.Minute)

	first := ElapsedHours(start, end, 45)
	for i := 0; i < 10; i++ {
		if got := ElapsedHours(start, end, 45); got != first {
			t.Fatalf("ElapsedHours not deterministic: %v != %v", got, first)
		}
	}
}
