package quadratic

import (
	"fmt"
	"log"
	"strings"

	"github.com/scottcagno/qpmap/pkg/common"
	"github.com/scottcagno/qpmap/pkg/dynarr"
	"github.com/scottcagno/qpmap/pkg/hash/hashfn"
)

// HashMap represents a closed hashing hashtable implementation using
// quadratic probing over a prime number of buckets. It is not safe for
// concurrent use, see SyncHashMap.
type HashMap struct {
	hash     hashfn.HashFunc
	logger   *log.Logger
	capacity uint
	size     uint
	resizes  uint
	buckets  *dynarr.DynamicArray
}

// Stats is a point in time summary of the HashMap
type Stats struct {
	Size         int
	Capacity     int
	Tombstones   int
	EmptyBuckets int
	Load         float64
	Resizes      int
}

// NewHashMap returns a new HashMap with at least the requested number of
// buckets, rounded up to a prime. A nil hash falls back to hashfn.Default.
func NewHashMap(capacity uint, hash hashfn.HashFunc) *HashMap {
	if hash == nil {
		hash = hashfn.Default
	}
	return newHashMap(capacity, hash, nil)
}

// NewHashMapWithConfig returns a new HashMap built from the supplied
// config. Zero fields are filled with their defaults.
func NewHashMapWithConfig(conf *Config) *HashMap {
	conf = checkConfig(conf)
	return newHashMap(conf.InitialCapacity, conf.HashFunc, conf.Logger)
}

func newHashMap(capacity uint, hash hashfn.HashFunc, logger *log.Logger) *HashMap {
	capacity = NextPrime(capacity)
	return &HashMap{
		hash:     hash,
		logger:   logger,
		capacity: capacity,
		buckets:  newBuckets(capacity),
	}
}

func newBuckets(capacity uint) *dynarr.DynamicArray {
	return dynarr.NewWithLen(int(capacity), slot{})
}

// slotAt returns the slot at index i. The backing array is always exactly
// capacity long, so a bad index means the probe math is broken.
func (m *HashMap) slotAt(i int) slot {
	v, err := m.buckets.Get(i)
	common.ErrCheckMsg(err, "quadratic: reading bucket")
	return v.(slot)
}

func (m *HashMap) setSlot(i int, s slot) {
	err := m.buckets.Set(i, s)
	common.ErrCheckMsg(err, "quadratic: writing bucket")
}

// find returns the index of the live slot holding key. It never stops at
// a tombstone, even one holding the same key.
func (m *HashMap) find(key string) (int, bool) {
	for p := newProbe(m.hash(key), m.capacity); !p.done(); p.next() {
		i := p.index()
		if m.slotAt(i).holds(key) {
			return i, true
		}
	}
	return -1, false
}

// Get returns the value for a given key, or returns false if none could be found
func (m *HashMap) Get(key string) (interface{}, bool) {
	i, ok := m.find(key)
	if !ok {
		return nil, false
	}
	return m.slotAt(i).Value, true
}

// ContainsKey reports whether key has a live entry
func (m *HashMap) ContainsKey(key string) bool {
	_, ok := m.find(key)
	return ok
}

// Put inserts a key value entry, or updates the value if the key is
// already present. The table is grown before probing whenever the insert
// could push the load factor above MaxLoadFactor.
func (m *HashMap) Put(key string, value interface{}) {
	if float64(m.size+1)/float64(m.capacity) > MaxLoadFactor {
		m.resize(m.capacity * 2)
	}
	insertAt := -1
probing:
	for p := newProbe(m.hash(key), m.capacity); !p.done(); p.next() {
		i := p.index()
		s := m.slotAt(i)
		switch s.state {
		case slotOccupied:
			// existing entry, update it in place
			if s.Key == key {
				s.Value = value
				m.setSlot(i, s)
				return
			}
		case slotTombstone:
			// reusable, but the key may still live further along
			if insertAt < 0 {
				insertAt = i
			}
		case slotEmpty:
			if insertAt < 0 {
				insertAt = i
			}
			break probing
		}
	}
	if insertAt < 0 {
		common.ErrCheckMsg(
			fmt.Errorf("%w: key %q, size %d, capacity %d", errProbeExhausted, key, m.size, m.capacity),
			"quadratic: put",
		)
	}
	m.setSlot(insertAt, slot{
		state: slotOccupied,
		Entry: Entry{Key: key, Value: value},
	})
	m.size++
}

// Remove marks the entry for key as a tombstone. Removing a key that is
// not present does nothing.
func (m *HashMap) Remove(key string) {
	i, ok := m.find(key)
	if !ok {
		return
	}
	s := m.slotAt(i)
	s.state = slotTombstone
	m.setSlot(i, s)
	m.size--
}

// Clear drops every entry and tombstone, keeping the current capacity
func (m *HashMap) Clear() {
	m.buckets = newBuckets(m.capacity)
	m.size = 0
}

// ResizeTable rebuilds the table with newCapacity buckets, rounded up to a
// prime. It returns ErrCapacityTooSmall, and changes nothing, if
// newCapacity is below the number of live entries.
func (m *HashMap) ResizeTable(newCapacity uint) error {
	if newCapacity < m.size {
		return fmt.Errorf("%w: requested %d, holding %d", ErrCapacityTooSmall, newCapacity, m.size)
	}
	m.resize(newCapacity)
	return nil
}

// resize makes a new bucket array of the new size and re-inserts every
// live entry through Put, in bucket order. Because Put checks the load
// factor, a requested capacity barely above the entry count may cause
// another resize part way through the rebuild.
func (m *HashMap) resize(newCapacity uint) {
	if !IsPrime(newCapacity) {
		newCapacity = NextPrime(newCapacity)
	}
	old, oldCapacity, liveBefore := m.buckets, m.capacity, m.size
	m.buckets = newBuckets(newCapacity)
	m.capacity = newCapacity
	m.size = 0
	m.resizes++
	if m.logger != nil {
		m.logger.Printf("resizing table: capacity %d -> %d, live entries %d\n", oldCapacity, newCapacity, liveBefore)
	}
	for i := 0; i < old.Len(); i++ {
		v, err := old.Get(i)
		common.ErrCheckMsg(err, "quadratic: rebuilding table")
		if s := v.(slot); s.isLive() {
			m.Put(s.Key, s.Value)
		}
	}
}

// TableLoad returns the current load factor of the HashMap
func (m *HashMap) TableLoad() float64 {
	return float64(m.size) / float64(m.capacity)
}

// EmptyBuckets returns the number of buckets without a live entry.
// Tombstones count as empty.
func (m *HashMap) EmptyBuckets() int {
	return int(m.capacity - m.size)
}

// Len returns the number of entries currently in the HashMap
func (m *HashMap) Len() int {
	return int(m.size)
}

// Cap returns the number of buckets in the HashMap
func (m *HashMap) Cap() int {
	return int(m.capacity)
}

// GetKeysAndValues returns every live entry in bucket order
func (m *HashMap) GetKeysAndValues() []Entry {
	entries := make([]Entry, 0, m.size)
	m.Range(func(key string, value interface{}) bool {
		entries = append(entries, Entry{Key: key, Value: value})
		return true
	})
	return entries
}

// RangeFunc is the callback type used by Range
type RangeFunc func(key string, value interface{}) bool

// Range calls fn for each live entry in bucket order, skipping empty and
// tombstoned buckets, for as long as fn returns true. It is not safe to
// perform an insert or remove operation while ranging!
func (m *HashMap) Range(fn RangeFunc) {
	for i := 0; i < m.buckets.Len(); i++ {
		s := m.slotAt(i)
		if !s.isLive() {
			continue
		}
		if !fn(s.Key, s.Value) {
			return
		}
	}
}

// Stats returns a summary of the table's current shape
func (m *HashMap) Stats() Stats {
	var tombstones int
	for i := 0; i < m.buckets.Len(); i++ {
		if m.slotAt(i).state == slotTombstone {
			tombstones++
		}
	}
	return Stats{
		Size:         m.Len(),
		Capacity:     m.Cap(),
		Tombstones:   tombstones,
		EmptyBuckets: m.EmptyBuckets(),
		Load:         m.TableLoad(),
		Resizes:      int(m.resizes),
	}
}

// String dumps every bucket, one per line, as "index: contents"
func (m *HashMap) String() string {
	var sb strings.Builder
	for i := 0; i < m.buckets.Len(); i++ {
		fmt.Fprintf(&sb, "%d: %s\n", i, m.slotAt(i))
	}
	return sb.String()
}

// Close frees the bucket array. Calling any method on the HashMap after
// this will most likely result in a panic
func (m *HashMap) Close() {
	m.buckets = nil
	m.size = 0
}
