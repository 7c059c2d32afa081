package booking

import (
	"sort"

	"kessoku/models"
)

// Draft is the user's in-progress, unsubmitted slot selection for one
// store visit: room -> date -> sorted time keys. Rooms and dates keep
// their first-insertion order so summaries read back in the order the
// user picked them; time keys within a date are kept sorted.
//
// Empty branches are pruned eagerly: a date entry exists only while its
// time set is non-empty, and a room entry only while it has at least
// one date entry.
//
// A Draft is owned by a single store-detail session and mutated only
// from its event loop; it is not safe for concurrent use.
type Draft struct {
	roomOrder []string
	dateOrder map[string][]string
	times     map[string]map[string][]string
}

// Selection is one (room, date) group of the draft, for display.
type Selection struct {
	ClassID string
	Date    string
	Times   []string
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{
		dateOrder: make(map[string][]string),
		times:     make(map[string]map[string][]string),
	}
}

// Toggle flips the selection state of one slot coordinate. Toggling a
// slot present in booked is a no-op: already-taken slots are never
// selectable. Removing the last time of a date prunes the date entry,
// and removing the last date of a room prunes the room entry.
func (d *Draft) Toggle(classID, date, timeKey string, booked BookedSet) {
	if booked.Contains(date, timeKey) {
		return
	}
	if d.Selected(classID, date, timeKey) {
		d.remove(classID, date, timeKey)
		return
	}
	d.add(classID, date, timeKey)
}

func (d *Draft) add(classID, date, timeKey string) {
	dates, ok := d.times[classID]
	if !ok {
		dates = make(map[string][]string)
		d.times[classID] = dates
		d.roomOrder = append(d.roomOrder, classID)
	}
	if _, ok := dates[date]; !ok {
		d.dateOrder[classID] = append(d.dateOrder[classID], date)
	}

	// Insert keeping the date's time list sorted.
	list := dates[date]
	i := sort.SearchStrings(list, timeKey)
	list = append(list, "")
	copy(list[i+1:], list[i:])
	list[i] = timeKey
	dates[date] = list
}

func (d *Draft) remove(classID, date, timeKey string) {
	dates := d.times[classID]
	list := dates[date]
	i := sort.SearchStrings(list, timeKey)
	if i >= len(list) || list[i] != timeKey {
		return
	}
	list = append(list[:i], list[i+1:]...)

	if len(list) > 0 {
		dates[date] = list
		return
	}

	// Prune the emptied date entry.
	delete(dates, date)
	d.dateOrder[classID] = removeString(d.dateOrder[classID], date)

	if len(dates) == 0 {
		// Prune the emptied room entry.
		delete(d.times, classID)
		delete(d.dateOrder, classID)
		d.roomOrder = removeString(d.roomOrder, classID)
	}
}

func removeString(list []string, s string) []string {
	for i, v := range list {
		if v == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Selected reports whether a slot coordinate is currently selected.
func (d *Draft) Selected(classID, date, timeKey string) bool {
	list := d.times[classID][date]
	i := sort.SearchStrings(list, timeKey)
	return i < len(list) && list[i] == timeKey
}

// HasSelection reports whether any slot is selected.
func (d *Draft) HasSelection() bool {
	return len(d.roomOrder) > 0
}

// Summary returns the draft grouped by (room, date) in first-insertion
// order, each with its sorted times. The returned slices are copies.
func (d *Draft) Summary() []Selection {
	var out []Selection
	for _, classID := range d.roomOrder {
		for _, date := range d.dateOrder[classID] {
			times := d.times[classID][date]
			out = append(out, Selection{
				ClassID: classID,
				Date:    date,
				Times:   append([]string(nil), times...),
			})
		}
	}
	return out
}

// Payload flattens the draft into the booking submission body: one
// entry per (room, date) pair, same order as Summary.
func (d *Draft) Payload() []models.BookContent {
	var out []models.BookContent
	for _, sel := range d.Summary() {
		out = append(out, models.BookContent{
			ClassID:  sel.ClassID,
			BookDate: sel.Date,
			Times:    sel.Times,
		})
	}
	return out
}

// Reset empties the draft, e.g. after a successful submission.
func (d *Draft) Reset() {
	d.roomOrder = nil
	d.dateOrder = make(map[string][]string)
	d.times = make(map[string]map[string][]string)
}
