package runmap_test

import (
	"errors"
	"github.com/hscells/runmap"
	"testing"
)

func TestNewLineError(t *testing.T) {
	err := runmap.NewLineError(3, 999, 1000, runmap.ErrIndex)
	if err.Line != 4000 || err.Topic != 4 || err.Rank != 1000 {
		t.Errorf("unexpected location %+v", err)
	}
	if !errors.Is(err, runmap.ErrIndex) {
		t.Error("expected line error to unwrap to the index error")
	}
	if errors.Is(err, runmap.ErrFormat) {
		t.Error("did not expect a format error")
	}
	if err.Error() != "line 4000 (topic 4, rank 1000): index error" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
