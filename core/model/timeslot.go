package model

import "fmt"

// Timeslot is a half-hour booking unit encoded as HHMM (930 is 09:30).
type Timeslot int

const (
	DefaultOpen  Timeslot = 900
	DefaultClose Timeslot = 1700

	// SlotMinutes is the duration of a single timeslot.
	SlotMinutes = 30
)

// Hour returns the HH part of the slot.
func (t Timeslot) Hour() int { return int(t) / 100 }

// Minute returns the MM part of the slot.
func (t Timeslot) Minute() int { return int(t) % 100 }

// Valid reports whether t is a wall-clock time on a half-hour boundary.
func (t Timeslot) Valid() bool {
	if t < 0 || t.Hour() > 23 {
		return false
	}
	m := t.Minute()
	return m == 0 || m == 30
}

// Next returns the slot starting 30 minutes after t. Adding 70 to a :30 value
// carries into the next hour (930 -> 1000).
func (t Timeslot) Next() Timeslot {
	if t.Minute() == 0 {
		return t + 30
	}
	return t + 70
}

// String renders the start time as HH:MM.
func (t Timeslot) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// TimeRange renders the slot as "HH:MM AM - HH:MM AM". The period label is
// fixed and does not track the hour.
func (t Timeslot) TimeRange() string {
	end := t.Next()
	return fmt.Sprintf("%s AM - %s AM", t, end)
}

// GenerateCatalog returns every slot from open to close inclusive in
// increasing order. The close value itself is emitted even though its
// nominal end lies outside [open, close].
func GenerateCatalog(open, close Timeslot) []Timeslot {
	var slots []Timeslot
	for cur := open; cur <= close; cur = cur.Next() {
		slots = append(slots, cur)
	}
	return slots
}
