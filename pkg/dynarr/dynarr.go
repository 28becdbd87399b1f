package dynarr

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("dynarr: index out of range")

// DynamicArray is a growable, randomly indexable sequence. Every indexed
// access is bounds checked and reports ErrIndexOutOfRange rather than
// panicking, so the owner decides how fatal a bad index is.
type DynamicArray struct {
	data []interface{}
}

// New returns an empty DynamicArray
func New() *DynamicArray {
	return &DynamicArray{
		data: make([]interface{}, 0),
	}
}

// NewWithLen returns a DynamicArray holding n copies of fill
func NewWithLen(n int, fill interface{}) *DynamicArray {
	da := &DynamicArray{
		data: make([]interface{}, 0, n),
	}
	for i := 0; i < n; i++ {
		da.Append(fill)
	}
	return da
}

// Append adds v to the end of the array
func (da *DynamicArray) Append(v interface{}) {
	da.data = append(da.data, v)
}

// Get returns the item at index i
func (da *DynamicArray) Get(i int) (interface{}, error) {
	if err := da.checkIndex(i); err != nil {
		return nil, err
	}
	return da.data[i], nil
}

// Set replaces the item at index i
func (da *DynamicArray) Set(i int, v interface{}) error {
	if err := da.checkIndex(i); err != nil {
		return err
	}
	da.data[i] = v
	return nil
}

// Len returns the number of items in the array
func (da *DynamicArray) Len() int {
	return len(da.data)
}

func (da *DynamicArray) checkIndex(i int) error {
	if i < 0 || i >= len(da.data) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(da.data))
	}
	return nil
}
