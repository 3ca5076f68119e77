// Package station implements the charging station aggregate: the timeslot
// catalog of one business day, the bookings that move slots out of the
// available list, the wait queue and the persistence of bookings through a
// state.Store.
//
// A Station is meant for a single interactive session and is not safe for
// concurrent use.
package station
