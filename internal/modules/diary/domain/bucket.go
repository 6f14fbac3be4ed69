package domain

import (
	"time"

	"nshub/internal/platform/dates"
)

// Buckets partitions pending homework into due-tomorrow and due-later sets.
// Membership is decided once per assignment as it is added, so the sets are
// disjoint by construction, and an ID seen twice is dropped.
type Buckets struct {
	tomorrow []RawAssignment
	later    []RawAssignment
	seen     map[int64]struct{}
}

func NewBuckets() *Buckets {
	return &Buckets{seen: map[int64]struct{}{}}
}

func (b *Buckets) Add(a RawAssignment, today time.Time) {
	if _, dup := b.seen[a.ID]; dup {
		return
	}
	b.seen[a.ID] = struct{}{}
	if dates.IsTomorrow(a.Deadline, today) {
		b.tomorrow = append(b.tomorrow, a)
		return
	}
	b.later = append(b.later, a)
}

func (b *Buckets) Tomorrow() []RawAssignment { return b.tomorrow }
func (b *Buckets) Later() []RawAssignment    { return b.later }

// Ordered returns tomorrow's assignments first, then the rest in
// schedule-traversal order.
func (b *Buckets) Ordered() []RawAssignment {
	out := make([]RawAssignment, 0, len(b.tomorrow)+len(b.later))
	out = append(out, b.tomorrow...)
	out = append(out, b.later...)
	return out
}
