package availability

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEvaluateBoundaries(t *testing.T) {
	today := day(2024, 6, 1)

	cases := []struct {
		name string
		date time.Time
		want State
	}{
		{name: "tomorrow_locked", date: day(2024, 6, 2), want: Locked},
		{name: "today_available", date: day(2024, 6, 1), want: Available},
		// 2024 is a leap year: 2024-06-01 minus 366 calendar days is
		// 2023-06-01, and 2023-06-02 sits exactly on the 365-day boundary.
		{name: "366_days_back_expired", date: day(2023, 6, 1), want: Expired},
		{name: "365_days_back_available", date: day(2023, 6, 2), want: Available},
		{name: "far_future_locked", date: day(2030, 1, 1), want: Locked},
		{name: "far_past_expired", date: day(2020, 1, 1), want: Expired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.date, today, 365)
			if got != tc.want {
				t.Fatalf("Evaluate(%s)=%s, want %s", tc.date.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestEvaluateNormalizesTimeOfDay(t *testing.T) {
	today := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)
	almostMidnight := time.Date(2024, 6, 2, 0, 1, 0, 0, time.UTC)
	if got := Evaluate(almostMidnight, today, 365); got != Locked {
		t.Fatalf("next calendar day must be locked regardless of clock time, got %s", got)
	}
	sameDayMorning := time.Date(2024, 6, 1, 0, 1, 0, 0, time.UTC)
	if got := Evaluate(sameDayMorning, today, 365); got != Available {
		t.Fatalf("same calendar day must be available, got %s", got)
	}
}

func TestEvaluateDefaultRetention(t *testing.T) {
	today := day(2024, 6, 1)
	if got := Evaluate(day(2023, 6, 1), today, 0); got != Expired {
		t.Fatalf("zero retention should fall back to the 365-day default, got %s", got)
	}
	if got := Evaluate(day(2023, 6, 2), today, 0); got != Available {
		t.Fatalf("default retention boundary day should stay available, got %s", got)
	}
}
