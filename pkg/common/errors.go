package common

import "log"

// ErrCheckMsg panics if err is non-nil, naming the failing operation. It
// is reserved for errors that can only come from a broken internal
// invariant.
func ErrCheckMsg(err error, op string) {
	if err != nil {
		log.Panicf("%s: [%T] %q\n", op, err, err)
	}
}
