package models

import (
	"testing"
	"time"
)

func TestEstimatedCompletion(t *testing.T) {
	updatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		status  string
		minutes int
	}{
		{StatusPending, 45},
		{StatusConfirmed, 40},
		{StatusPreparing, 30},
		{StatusReady, 5},
		{StatusOutForDelivery, 15},
		{StatusDelivered, 0},
		{StatusCancelled, 0},
		{"something-else", 30},
	}

	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			want := updatedAt.Add(time.Duration(tc.minutes) * time.Minute)
			if got := EstimatedCompletion(tc.status, updatedAt); !got.Equal(want) {
				t.Errorf("expected %s, got %s", want, got)
			}
		})
	}
}

func TestValidOrderStatuses(t *testing.T) {
	for _, status := range []string{
		StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusOutForDelivery, StatusDelivered, StatusCancelled,
	} {
		if !ValidOrderStatuses[status] {
			t.Errorf("expected %q to be a valid status", status)
		}
	}
	if ValidOrderStatuses["shipped"] {
		t.Error("expected unknown status to be rejected")
	}
}
