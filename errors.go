// Copyright (c) 2015 Lei CHEN (raistlic). All Rights Reserved

package bitmap

import "fmt"

// InvalidArgumentError reports a violated call contract: an out of range
// index, a negative size, or a missing predicate.  It is delivered by
// panicking at the offending call site; every violation is a programming
// error rather than a runtime condition, so there is no recovery path
// and no error return on the pure accessors.
//
// Note the -1 sentinel from SelectOne/SelectZero is a normal answer and
// is never reported through this type.
type InvalidArgumentError struct {
	msg string
}

func (e *InvalidArgumentError) Error() string {
	return e.msg
}

// checkArgument panics with an *InvalidArgumentError unless cond holds.
func checkArgument(cond bool, format string, args ...any) {
	if !cond {
		panic(&InvalidArgumentError{msg: fmt.Sprintf(format, args...)})
	}
}
