package util

import (
	"log"
	"time"
)

/*
	usage:

	func foo() {
		defer TimeThis(logger, "foo")()
		// code to measure
	}

*/

// TimeThis returns a func that logs how long has passed since TimeThis
// was called. A nil logger turns it into a no-op.
func TimeThis(logger *log.Logger, msg string) func() {
	start := time.Now()
	return func() {
		if logger != nil {
			logger.Printf("%s: %0.6f sec\n", msg, time.Since(start).Seconds())
		}
	}
}
