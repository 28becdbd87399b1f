package quadratic

import (
	"strconv"
	"testing"

	"github.com/scottcagno/qpmap/pkg/hash/hashfn"
	"github.com/scottcagno/qpmap/pkg/util"
)

func collect(it *Iterator) []string {
	var keys []string
	for {
		e, ok := it.Next()
		if !ok {
			return keys
		}
		keys = append(keys, e.Key)
	}
}

func newDigitMap(t *testing.T) *HashMap {
	hm := NewHashMap(10, identityHash)
	for i := 0; i < 5; i++ {
		hm.Put(strconv.Itoa(i), strconv.Itoa(i*10))
	}
	util.AssertExpected(t, 11, hm.Cap())
	return hm
}

func Test_Iterator_Dense(t *testing.T) {
	hm := newDigitMap(t)
	it := hm.Iterator()
	for i := 0; i < 5; i++ {
		e, ok := it.Next()
		util.AssertTrue(t, ok)
		util.AssertExpected(t, Entry{Key: strconv.Itoa(i), Value: strconv.Itoa(i * 10)}, e)
	}
	_, ok := it.Next()
	util.AssertFalse(t, ok)
}

func Test_Iterator_StopsAtFirstGap(t *testing.T) {
	hm := newDigitMap(t)
	hm.Remove("2")
	util.AssertExpected(t, []string{"0", "1"}, collect(hm.Iterator()))
	// Range still sees everything past the gap
	var ranged []string
	hm.Range(func(key string, _ interface{}) bool {
		ranged = append(ranged, key)
		return true
	})
	util.AssertExpected(t, []string{"0", "1", "3", "4"}, ranged)
}

func Test_Iterator_RemoveEnds(t *testing.T) {
	hm := newDigitMap(t)
	hm.Remove("0")
	hm.Remove("4")
	// bucket 0 is a tombstone, so nothing is yielded
	util.AssertLen(t, 0, len(collect(hm.Iterator())))
	util.AssertExpected(t, 3, len(hm.GetKeysAndValues()))

	hm.Put("0", "zero")
	util.AssertExpected(t, []string{"0", "1", "2", "3"}, collect(hm.Iterator()))
}

func Test_Iterator_EmptyFirstBucket(t *testing.T) {
	hm := NewHashMap(10, hashfn.Weighted)
	for i := 0; i < 5; i++ {
		hm.Put(strconv.Itoa(i), strconv.Itoa(i*24))
	}
	// the digits land in buckets 4 through 8
	util.AssertLen(t, 0, len(collect(hm.Iterator())))
	util.AssertExpected(t, 5, len(hm.GetKeysAndValues()))
}

func Test_Iterator_Independent(t *testing.T) {
	hm := newDigitMap(t)
	a, b := hm.Iterator(), hm.Iterator()
	e, _ := a.Next()
	util.AssertExpected(t, "0", e.Key)
	e, _ = a.Next()
	util.AssertExpected(t, "1", e.Key)
	e, _ = b.Next()
	util.AssertExpected(t, "0", e.Key)
	util.AssertExpected(t, []string{"2", "3", "4"}, collect(a))
	util.AssertExpected(t, []string{"1", "2", "3", "4"}, collect(b))
}

func Test_Iterator_NotRestartable(t *testing.T) {
	hm := NewHashMap(3, identityHash)
	hm.Put("0", 0)
	it := hm.Iterator()
	_, ok := it.Next()
	util.AssertTrue(t, ok)
	_, ok = it.Next()
	util.AssertFalse(t, ok)
	// filling the gap afterwards does not revive a finished cursor
	hm.Put("1", 1)
	_, ok = it.Next()
	util.AssertFalse(t, ok)
}
