package state

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kilianp07/chargeslot/core/model"
)

// Encode writes snap in the three-line format. Lists carry no trailing comma.
func Encode(w io.Writer, snap Snapshot) error {
	slots := make([]string, len(snap.Bookings))
	users := make([]string, len(snap.Bookings))
	for i, b := range snap.Bookings {
		if err := b.User.Validate(); err != nil {
			return err
		}
		slots[i] = strconv.Itoa(int(b.Slot))
		users[i] = b.User.ID + "-" + strconv.FormatBool(b.User.Admin)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s:%s\n", keyStationID, snap.StationID)
	fmt.Fprintf(bw, "%s:%s\n", keyBooked, strings.Join(slots, ","))
	fmt.Fprintf(bw, "%s:%s\n", keyUsers, strings.Join(users, ","))
	return bw.Flush()
}

// Decode parses a state file. Either the whole input is accepted or an error
// wrapping ErrMalformedState is returned. Unknown keys and blank lines are
// ignored; empty list items (trailing commas) are skipped.
//
//gocyclo:ignore
func Decode(r io.Reader) (Snapshot, error) {
	var (
		snap  Snapshot
		slots []model.Timeslot
		users []model.User
	)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		key, value, ok := strings.Cut(text, ":")
		if !ok {
			return Snapshot{}, malformed(line, "missing ':' separator")
		}
		switch key {
		case keyStationID:
			snap.StationID = value
		case keyBooked:
			slots = slots[:0]
			seen := map[model.Timeslot]bool{}
			for _, item := range splitList(value) {
				n, err := strconv.Atoi(item)
				if err != nil {
					return Snapshot{}, malformed(line, fmt.Sprintf("slot %q is not a number", item))
				}
				slot := model.Timeslot(n)
				if !slot.Valid() {
					return Snapshot{}, malformed(line, fmt.Sprintf("slot %d is not a half-hour time", n))
				}
				if seen[slot] {
					return Snapshot{}, malformed(line, fmt.Sprintf("slot %d booked twice", n))
				}
				seen[slot] = true
				slots = append(slots, slot)
			}
		case keyUsers:
			users = users[:0]
			for _, item := range splitList(value) {
				u, err := parseUser(item)
				if err != nil {
					return Snapshot{}, malformed(line, err.Error())
				}
				users = append(users, u)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("read state: %w", err)
	}
	if len(slots) != len(users) {
		return Snapshot{}, fmt.Errorf("%w: %d booked slots for %d booked users", ErrMalformedState, len(slots), len(users))
	}
	for i := range slots {
		snap.Bookings = append(snap.Bookings, Booking{Slot: slots[i], User: users[i]})
	}
	return snap, nil
}

func parseUser(item string) (model.User, error) {
	parts := strings.Split(item, "-")
	if len(parts) != 2 {
		return model.User{}, fmt.Errorf("user %q: expected id-isAdmin", item)
	}
	admin, err := strconv.ParseBool(parts[1])
	if err != nil {
		return model.User{}, fmt.Errorf("user %q: admin flag %q is not a boolean", item, parts[1])
	}
	u := model.User{ID: parts[0], Admin: admin}
	if err := u.Validate(); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func malformed(line int, reason string) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedState, line, reason)
}
