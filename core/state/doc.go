// Package state encodes a charging station's bookings in the line-oriented
// key:value text format used for the station state file:
//
//	stationId:<id>
//	availableTimeslots:<comma-joined booked slots>
//	bookedUsers:<comma-joined id-isAdmin>
//
// The availableTimeslots key holds the booked slots. The key is kept as is so
// existing state files keep loading.
package state
