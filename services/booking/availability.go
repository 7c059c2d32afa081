package booking

import "kessoku/models"

// SlotState classifies one displayable slot coordinate.
type SlotState int

const (
	SlotAvailable SlotState = iota
	SlotBooked
	SlotSelected
)

func (s SlotState) String() string {
	switch s {
	case SlotBooked:
		return "booked"
	case SlotSelected:
		return "selected"
	default:
		return "available"
	}
}

// BookedSet holds the (date, time) pairs already confirmed by other
// users for one room. It is a read-only snapshot, replaced wholesale
// whenever the room's orders are re-fetched.
type BookedSet map[string]map[string]struct{}

// NewBookedSet flattens a room's order records into a BookedSet.
func NewBookedSet(orders []models.ClassOrder) BookedSet {
	set := make(BookedSet, len(orders))
	for _, order := range orders {
		times, ok := set[order.Date]
		if !ok {
			times = make(map[string]struct{}, len(order.TimeList))
			set[order.Date] = times
		}
		for _, t := range order.TimeList {
			times[t] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the (date, time) pair is already booked.
func (s BookedSet) Contains(date, timeKey string) bool {
	_, ok := s[date][timeKey]
	return ok
}

// Classify resolves the display state of one slot coordinate. Booked
// wins over selected; the draft never holds a booked coordinate, so the
// two cannot actually collide. Always returns one of the three states.
func Classify(booked BookedSet, draft *Draft, classID, date, timeKey string) SlotState {
	if booked.Contains(date, timeKey) {
		return SlotBooked
	}
	if draft.Selected(classID, date, timeKey) {
		return SlotSelected
	}
	return SlotAvailable
}
