// Package labels loads the mapping from internal document indices to external document identifiers.
//
// A labels file contains one document per line. The first whitespace delimited token of a line is the identifier of
// the document; any remaining tokens (e.g. the numeric id the graph engine assigned) are ignored. The first line of
// the file describes the document with index 1.
package labels

import (
	"bufio"
	"github.com/hscells/runmap"
	"github.com/pkg/errors"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Table is an ordered, read-only list of document identifiers. The reverse index used by Index is built once, on
// first use, and is safe for concurrent use.
type Table struct {
	IDs   []string
	once  sync.Once
	index map[string]int
}

// NewTable creates a table from a list of identifiers, where ids[0] is the identifier of index 1.
func NewTable(ids []string) *Table {
	return &Table{IDs: ids}
}

// Len is the number of identifiers in the table.
func (t *Table) Len() int {
	return len(t.IDs)
}

// Get returns the identifier of the 1-based index idx.
func (t *Table) Get(idx int) (string, error) {
	if idx < 1 || idx > len(t.IDs) {
		return "", errors.Wrapf(runmap.ErrIndex, "index %d outside of [1, %d]", idx, len(t.IDs))
	}
	return t.IDs[idx-1], nil
}

// Index returns the 1-based index of an identifier. When an identifier appears more than once, the last occurrence
// is used.
func (t *Table) Index(id string) (int, error) {
	t.once.Do(func() {
		t.index = make(map[string]int, len(t.IDs))
		for i, v := range t.IDs {
			t.index[v] = i + 1
		}
	})
	if idx, ok := t.index[id]; ok {
		return idx, nil
	}
	return 0, errors.Wrapf(runmap.ErrIndex, "identifier %q not in labels", id)
}

// FromReader reads a labels table. Every line must contain at least one token.
func FromReader(r io.Reader) (*Table, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), runmap.MaxLineSize)

	var ids []string
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) == 0 {
			return nil, errors.Wrapf(runmap.ErrFormat, "labels line %d has no identifier", len(ids)+1)
		}
		ids = append(ids, fields[0])
	}
	if err := s.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return nil, errors.Wrapf(runmap.ErrFormat, "labels line %d: %v", len(ids)+1, err)
		}
		return nil, errors.Wrapf(runmap.ErrFileAccess, "reading labels: %v", err)
	}
	return NewTable(ids), nil
}

// Load reads the labels file at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(runmap.ErrFileAccess, "%v", err)
	}
	defer f.Close()

	log.Printf("loading labels from %s...", path)
	t, err := FromReader(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	log.Printf("loaded %d labels", t.Len())
	return t, nil
}
