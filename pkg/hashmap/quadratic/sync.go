package quadratic

import "sync"

// SyncHashMap guards a HashMap with a single read write mutex
type SyncHashMap struct {
	mu sync.RWMutex
	hm *HashMap
}

// NewSyncHashMap returns a new SyncHashMap built from the supplied config
func NewSyncHashMap(conf *Config) *SyncHashMap {
	return &SyncHashMap{
		hm: NewHashMapWithConfig(conf),
	}
}

func (s *SyncHashMap) Put(key string, value interface{}) {
	s.mu.Lock()
	s.hm.Put(key, value)
	s.mu.Unlock()
}

func (s *SyncHashMap) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hm.Get(key)
}

func (s *SyncHashMap) ContainsKey(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hm.ContainsKey(key)
}

func (s *SyncHashMap) Remove(key string) {
	s.mu.Lock()
	s.hm.Remove(key)
	s.mu.Unlock()
}

func (s *SyncHashMap) Clear() {
	s.mu.Lock()
	s.hm.Clear()
	s.mu.Unlock()
}

func (s *SyncHashMap) ResizeTable(newCapacity uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hm.ResizeTable(newCapacity)
}

// Range ranges the map while holding the read lock. fn must not call
// back into the SyncHashMap.
func (s *SyncHashMap) Range(fn RangeFunc) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.hm.Range(fn)
}

// Snapshot returns a copy of every live entry in bucket order
func (s *SyncHashMap) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hm.GetKeysAndValues()
}

func (s *SyncHashMap) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hm.Stats()
}

func (s *SyncHashMap) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hm.Len()
}

func (s *SyncHashMap) Close() {
	s.mu.Lock()
	s.hm.Close()
	s.mu.Unlock()
}
