package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/scottcagno/qpmap/pkg/hashmap/quadratic"
)

func newMap(conf *quadratic.Config, capacity uint) *quadratic.HashMap {
	c := *conf
	c.InitialCapacity = capacity
	return quadratic.NewHashMapWithConfig(&c)
}

func printDump(w io.Writer, hm *quadratic.HashMap, dump bool) {
	if dump {
		fmt.Fprint(w, hm)
	}
}

func runPut(w io.Writer, conf *quadratic.Config, dump bool) error {
	hm := newMap(conf, 53)
	for i := 0; i < 150; i++ {
		hm.Put("str"+strconv.Itoa(i), i*100)
		if i%25 == 24 {
			fmt.Fprintf(w, "%d %.2f %d %d\n", hm.EmptyBuckets(), hm.TableLoad(), hm.Len(), hm.Cap())
		}
	}
	printDump(w, hm, dump)
	return nil
}

func runTableLoad(w io.Writer, conf *quadratic.Config, dump bool) error {
	hm := newMap(conf, 101)
	fmt.Fprintf(w, "%.2f\n", hm.TableLoad())
	hm.Put("key1", 10)
	fmt.Fprintf(w, "%.2f\n", hm.TableLoad())
	hm.Put("key2", 20)
	fmt.Fprintf(w, "%.2f\n", hm.TableLoad())
	hm.Put("key1", 30)
	fmt.Fprintf(w, "%.2f\n", hm.TableLoad())
	printDump(w, hm, dump)
	return nil
}

func runEmptyBuckets(w io.Writer, conf *quadratic.Config, dump bool) error {
	hm := newMap(conf, 101)
	fmt.Fprintf(w, "%d %d %d\n", hm.EmptyBuckets(), hm.Len(), hm.Cap())
	for _, kv := range []struct {
		key string
		val int
	}{{"key1", 10}, {"key2", 20}, {"key1", 30}, {"key4", 40}} {
		hm.Put(kv.key, kv.val)
		fmt.Fprintf(w, "%d %d %d\n", hm.EmptyBuckets(), hm.Len(), hm.Cap())
	}
	printDump(w, hm, dump)
	return nil
}

func runResize(w io.Writer, conf *quadratic.Config, dump bool) error {
	hm := newMap(conf, 23)
	hm.Put("key1", 10)
	v, _ := hm.Get("key1")
	fmt.Fprintf(w, "%d %d %v %t\n", hm.Len(), hm.Cap(), v, hm.ContainsKey("key1"))
	if err := hm.ResizeTable(30); err != nil {
		return err
	}
	v, _ = hm.Get("key1")
	fmt.Fprintf(w, "%d %d %v %t\n", hm.Len(), hm.Cap(), v, hm.ContainsKey("key1"))

	hm = newMap(conf, 79)
	var keys []int
	for key := 1; key < 1000; key += 13 {
		keys = append(keys, key)
		hm.Put(strconv.Itoa(key), key*42)
	}
	fmt.Fprintf(w, "%d %d\n", hm.Len(), hm.Cap())
	for capacity := uint(111); capacity < 1000; capacity += 117 {
		if err := hm.ResizeTable(capacity); err != nil {
			return err
		}
		hm.Put("some key", "some value")
		result := hm.ContainsKey("some key")
		hm.Remove("some key")
		for _, key := range keys {
			result = result && hm.ContainsKey(strconv.Itoa(key))
			result = result && !hm.ContainsKey(strconv.Itoa(key+1))
		}
		fmt.Fprintf(w, "%d %t %d %d %.2f\n", capacity, result, hm.Len(), hm.Cap(), hm.TableLoad())
	}
	printDump(w, hm, dump)
	return nil
}

func runGet(w io.Writer, conf *quadratic.Config, dump bool) error {
	hm := newMap(conf, 151)
	for i := 200; i < 300; i += 7 {
		hm.Put(strconv.Itoa(i), i*10)
	}
	fmt.Fprintf(w, "%d %d\n", hm.Len(), hm.Cap())
	for i := 200; i < 300; i += 21 {
		for _, k := range []int{i, i + 1} {
			v, ok := hm.Get(strconv.Itoa(k))
			fmt.Fprintf(w, "%d %v %t\n", k, v, ok && v == k*10)
		}
	}
	printDump(w, hm, dump)
	return nil
}

func runContainsKey(w io.Writer, conf *quadratic.Config, dump bool) error {
	hm := newMap(conf, 11)
	fmt.Fprintln(w, hm.ContainsKey("key1"))
	hm.Put("key1", 10)
	hm.Put("key2", 20)
	hm.Put("key3", 30)
	for _, k := range []string{"key1", "key4", "key2", "key3"} {
		fmt.Fprintln(w, hm.ContainsKey(k))
	}
	hm.Remove("key3")
	fmt.Fprintln(w, hm.ContainsKey("key3"))
	printDump(w, hm, dump)
	return nil
}

func runRemove(w io.Writer, conf *quadratic.Config, dump bool) error {
	hm := newMap(conf, 53)
	fmt.Fprintln(w, hm.ContainsKey("key1"))
	hm.Put("key1", 10)
	v, _ := hm.Get("key1")
	fmt.Fprintln(w, v)
	hm.Remove("key1")
	fmt.Fprintln(w, hm.ContainsKey("key1"))
	hm.Remove("key4")
	printDump(w, hm, dump)
	return nil
}

func runClear(w io.Writer, conf *quadratic.Config, dump bool) error {
	hm := newMap(conf, 53)
	fmt.Fprintf(w, "%d %d\n", hm.Len(), hm.Cap())
	hm.Put("key1", 10)
	hm.Put("key2", 20)
	fmt.Fprintf(w, "%d %d\n", hm.Len(), hm.Cap())
	if err := hm.ResizeTable(100); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d %d\n", hm.Len(), hm.Cap())
	hm.Clear()
	fmt.Fprintf(w, "%d %d\n", hm.Len(), hm.Cap())
	printDump(w, hm, dump)
	return nil
}

func runGetKeysAndValues(w io.Writer, conf *quadratic.Config, dump bool) error {
	hm := newMap(conf, 11)
	for i := 1; i < 6; i++ {
		hm.Put(strconv.Itoa(i), strconv.Itoa(i*10))
	}
	fmt.Fprintln(w, hm.GetKeysAndValues())
	// shrinking below the entry count is refused
	if err := hm.ResizeTable(2); !errors.Is(err, quadratic.ErrCapacityTooSmall) {
		return fmt.Errorf("expected %v, got %v", quadratic.ErrCapacityTooSmall, err)
	}
	fmt.Fprintln(w, hm.GetKeysAndValues())
	hm.Put("20", "200")
	hm.Remove("1")
	if err := hm.ResizeTable(12); err != nil {
		return err
	}
	fmt.Fprintln(w, hm.GetKeysAndValues())
	printDump(w, hm, dump)
	return nil
}

func runIterate(w io.Writer, conf *quadratic.Config, dump bool) error {
	hm := newMap(conf, 10)
	for i := 0; i < 5; i++ {
		hm.Put(strconv.Itoa(i), strconv.Itoa(i*24))
	}
	hm.Remove("0")
	hm.Remove("4")
	fmt.Fprint(w, hm)
	for it := hm.Iterator(); ; {
		e, ok := it.Next()
		if !ok {
			break
		}
		fmt.Fprintf(w, "K: %s V: %v\n", e.Key, e.Value)
	}
	printDump(w, hm, dump)
	return nil
}
