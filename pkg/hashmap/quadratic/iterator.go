package quadratic

// Iterator is a single pass, forward only cursor over a HashMap. It walks
// the buckets from index 0 and ends at the first bucket without a live
// entry, so it only ever yields the run of live buckets at the start of
// the table. Use Range or GetKeysAndValues to visit every entry.
//
// Each call to HashMap.Iterator returns an independent cursor. It is not
// safe to perform an insert or remove operation while iterating!
type Iterator struct {
	m    *HashMap
	pos  int
	done bool
}

// Iterator returns a new cursor positioned at bucket 0
func (m *HashMap) Iterator() *Iterator {
	return &Iterator{m: m}
}

// Next returns the entry under the cursor and advances it. Once it has
// returned false it keeps returning false.
func (it *Iterator) Next() (Entry, bool) {
	if it.done || it.pos >= it.m.buckets.Len() {
		it.done = true
		return Entry{}, false
	}
	s := it.m.slotAt(it.pos)
	if !s.isLive() {
		it.done = true
		return Entry{}, false
	}
	it.pos++
	return s.Entry, true
}
