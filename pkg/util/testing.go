package util

import (
	"errors"
	"reflect"
	"testing"
)

func AssertExpected(t *testing.T, expected, got interface{}) bool {
	t.Helper()
	if !reflect.DeepEqual(expected, got) {
		t.Errorf("error, expected: %v, got: %v\n", expected, got)
		return false
	}
	return true
}

func AssertLen(t *testing.T, expected, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, expected, got)
}

func AssertEqual(t *testing.T, expected, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, expected, got)
}

func AssertTrue(t *testing.T, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, true, got)
}

func AssertFalse(t *testing.T, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, false, got)
}

// AssertErrorIs checks that err matches target somewhere in its chain
func AssertErrorIs(t *testing.T, target, err error) bool {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error, expected: %v, got: %v\n", target, err)
		return false
	}
	return true
}

func AssertNoError(t *testing.T, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, nil, got)
}

func AssertNil(t *testing.T, got interface{}) bool {
	t.Helper()
	return AssertExpected(t, nil, got)
}

// AssertPanics runs fn and reports an error if it returns normally
func AssertPanics(t *testing.T, fn func()) (recovered interface{}) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Errorf("error, expected a panic\n")
		}
	}()
	fn()
	return nil
}
