package domain_test

import (
	"testing"
	"time"

	"nshub/internal/modules/diary/domain"
)

func TestBucketsPartitionTomorrowFirst(t *testing.T) {
	t.Parallel()
	today := date(2024, time.September, 2)
	buckets := domain.NewBuckets()

	later := homework(1, date(2024, time.September, 5))
	tomorrow := homework(2, date(2024, time.September, 3))
	buckets.Add(later, today)
	buckets.Add(tomorrow, today)

	if len(buckets.Tomorrow()) != 1 || buckets.Tomorrow()[0].ID != 2 {
		t.Fatalf("unexpected tomorrow bucket: %+v", buckets.Tomorrow())
	}
	if len(buckets.Later()) != 1 || buckets.Later()[0].ID != 1 {
		t.Fatalf("unexpected later bucket: %+v", buckets.Later())
	}
	ordered := buckets.Ordered()
	if len(ordered) != 2 || ordered[0].ID != 2 || ordered[1].ID != 1 {
		t.Fatalf("expected tomorrow-first ordering, got %+v", ordered)
	}
}

func TestDutyDueTomorrowLandsOnlyInTomorrow(t *testing.T) {
	t.Parallel()
	today := date(2024, time.September, 2)
	buckets := domain.NewBuckets()

	duty := homework(1, date(2024, time.September, 3))
	duty.IsDuty = true
	buckets.Add(duty, today)

	if len(buckets.Tomorrow()) != 1 || len(buckets.Later()) != 0 {
		t.Fatalf("duty item due tomorrow must land only in the tomorrow set: %+v / %+v",
			buckets.Tomorrow(), buckets.Later())
	}
}

func TestDuplicateIDsAreDropped(t *testing.T) {
	t.Parallel()
	today := date(2024, time.September, 2)
	buckets := domain.NewBuckets()

	buckets.Add(homework(1, date(2024, time.September, 3)), today)
	buckets.Add(homework(1, date(2024, time.September, 5)), today)

	if got := len(buckets.Ordered()); got != 1 {
		t.Fatalf("expected one assignment after dedup, got %d", got)
	}
}
