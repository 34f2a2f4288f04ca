package repository

import (
	"strings"
	"testing"
	"time"

	"inn/shared/constant"
)

func TestOverlapFilter(t *testing.T) {
	start := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC)

	t.Run("only live statuses block a slot", func(t *testing.T) {
		filter := overlapFilter("room-1", start, end, "")

		where, args := filter.GetWhereClause()

		if !strings.Contains(where, "room_bookings.status IN (:status_0, :status_1)") {
			t.Errorf("expected status IN clause, got %q", where)
		}

		statuses := map[any]bool{args["status_0"]: true, args["status_1"]: true}
		if !statuses[constant.BookingStatusPending] || !statuses[constant.BookingStatusConfirmed] {
			t.Errorf("expected pending and confirmed status args, got %v", args)
		}

		if statuses[constant.BookingStatusCancelled] {
			t.Error("cancelled bookings must not block a slot")
		}
	})

	t.Run("half open range predicate", func(t *testing.T) {
		filter := overlapFilter("room-1", start, end, "")

		where, args := filter.GetWhereClause()

		if !strings.Contains(where, "room_bookings.start_date < :overlap_end") {
			t.Errorf("expected strict start_date bound, got %q", where)
		}
		if !strings.Contains(where, "room_bookings.end_date > :overlap_start") {
			t.Errorf("expected strict end_date bound, got %q", where)
		}

		if got := args["overlap_end"]; got != end {
			t.Errorf("overlap_end = %v, expected %v", got, end)
		}
		if got := args["overlap_start"]; got != start {
			t.Errorf("overlap_start = %v, expected %v", got, start)
		}
	})

	t.Run("room clause", func(t *testing.T) {
		filter := overlapFilter("room-1", start, end, "")

		where, args := filter.GetWhereClause()

		if !strings.Contains(where, "room_bookings.room_id = :room_id") {
			t.Errorf("expected room_id clause, got %q", where)
		}
		if args["room_id"] != "room-1" {
			t.Errorf("room_id arg = %v, expected room-1", args["room_id"])
		}
	})

	t.Run("no self exclusion by default", func(t *testing.T) {
		filter := overlapFilter("room-1", start, end, "")

		where, _ := filter.GetWhereClause()

		if strings.Contains(where, "room_bookings.id !=") {
			t.Errorf("unexpected exclusion clause, got %q", where)
		}
	})

	t.Run("self exclusion when an id is given", func(t *testing.T) {
		filter := overlapFilter("room-1", start, end, "booking-1")

		where, args := filter.GetWhereClause()

		if !strings.Contains(where, "room_bookings.id != :id") {
			t.Errorf("expected exclusion clause, got %q", where)
		}
		if args["id"] != "booking-1" {
			t.Errorf("id arg = %v, expected booking-1", args["id"])
		}
	})

	t.Run("clauses are AND combined", func(t *testing.T) {
		filter := overlapFilter("room-1", start, end, "")

		where, _ := filter.GetWhereClause()

		if strings.Count(where, "AND") != 3 {
			t.Errorf("expected four AND-combined clauses, got %q", where)
		}
	})
}
