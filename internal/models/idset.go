package models

import "sort"

// IDSet is the set of giveaway IDs that have already been reported.
// It only ever grows: IDs are added after a confirmed send and are never
// removed.
type IDSet map[int]struct{}

func NewIDSet(ids ...int) IDSet {
	set := make(IDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s IDSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Add(id int) {
	s[id] = struct{}{}
}

// Sorted returns the IDs in ascending order. The result is never nil so
// an empty set serializes as [] rather than null.
func (s IDSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
