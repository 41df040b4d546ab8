package ingestors

import (
	"errors"
)

// ErrIoFailure marks a failure of the line source itself. It aborts a load;
// records read before the failure are discarded.
var ErrIoFailure = errors.New("log input read failed")
