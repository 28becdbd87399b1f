package quadratic

import "fmt"

type slotState uint8

const (
	slotEmpty slotState = iota
	slotTombstone
	slotOccupied
)

// Entry is a key value pair stored in the HashMap
type Entry struct {
	Key   string
	Value interface{}
}

// slot represents a single bucket in the HashMap table. A tombstoned
// slot keeps its entry around only so that it shows up in dumps.
type slot struct {
	state slotState
	Entry
}

func (s slot) isLive() bool {
	return s.state == slotOccupied
}

// holds reports whether the slot is live and has the key
func (s slot) holds(key string) bool {
	return s.state == slotOccupied && s.Key == key
}

func (s slot) String() string {
	if s.state == slotEmpty {
		return "None"
	}
	return fmt.Sprintf("K: %s V: %v TS: %t", s.Key, s.Value, s.state == slotTombstone)
}
