package runmap

import (
	"fmt"
)

// LineError locates a failure within a run file. Line, Topic and Rank are all 1-based; Topic is the position of the
// query block in the file, not the topic identifier written in the first column.
type LineError struct {
	Line  int
	Topic int
	Rank  int
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (topic %d, rank %d): %v", e.Line, e.Topic, e.Rank, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// NewLineError creates a LineError for the zero-based query block q and zero-based rank k of a run with depth
// records per query.
func NewLineError(q, k, depth int, err error) *LineError {
	return &LineError{
		Line:  q*depth + k + 1,
		Topic: q + 1,
		Rank:  k + 1,
		Err:   err,
	}
}
