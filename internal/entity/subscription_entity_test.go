package entity

import (
	"testing"
	"time"
)

func TestPlanPeriodEnd(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		interval PlanInterval
		start    time.Time
		want     time.Time
	}{
		{"monthly mid-month", PlanIntervalMonth, date(2024, 1, 15), date(2024, 2, 15)},
		{"monthly year wrap", PlanIntervalMonth, date(2024, 12, 15), date(2025, 1, 15)},
		// AddDate normalization: Jan 31 + 1 month overflows into March.
		{"monthly overflow", PlanIntervalMonth, date(2024, 1, 31), date(2024, 3, 2)},
		{"yearly", PlanIntervalYear, date(2024, 1, 15), date(2025, 1, 15)},
		{"yearly leap day", PlanIntervalYear, date(2024, 2, 29), date(2025, 3, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := &Plan{Interval: tt.interval}
			if got := plan.PeriodEnd(tt.start); !got.Equal(tt.want) {
				t.Errorf("PeriodEnd(%v) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}

func TestSubscriptionHasAccess(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status SubscriptionStatus
		end    time.Time
		want   bool
	}{
		{"active before expiry", SubscriptionStatusActive, now.Add(time.Hour), true},
		{"active at expiry", SubscriptionStatusActive, now, false},
		{"active after expiry", SubscriptionStatusActive, now.Add(-time.Hour), false},
		{"pending", SubscriptionStatusPending, now.Add(time.Hour), false},
		{"canceled", SubscriptionStatusCanceled, now.Add(time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &Subscription{Status: tt.status, EndDate: tt.end}
			if got := sub.HasAccess(now); got != tt.want {
				t.Errorf("HasAccess = %v, want %v", got, tt.want)
			}
		})
	}
}
