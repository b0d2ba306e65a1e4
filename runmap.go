// Package runmap converts ranked retrieval run files that reference documents by their internal (1-based) index into
// run files that reference documents by their external identifier.
//
// The conversion is driven by a labels file, where line i holds the identifier of the document with index i. The
// labels package loads these files, and the convert package performs the line by line rewriting of run files.
package runmap

import (
	"github.com/pkg/errors"
)

// Defaults for a conversion, matching the layout of the runs produced by the graph engine: 50 topics of 1000
// documents, with the document index in the third column.
const (
	DefaultTopics = 50
	DefaultDepth  = 1000
	DefaultField  = 2
	DefaultSuffix = ".qq"
	DefaultLabels = "/data/suwaileh/clueweb12/b/la3/doc-id-map/clueweb12_catb.docs.labels"
)

// MaxLineSize bounds the length of a single line read from a labels or run file.
const MaxLineSize = 1024 * 1024

var (
	// ErrFileAccess is returned when a file cannot be opened, read, or written.
	ErrFileAccess = errors.New("file access error")
	// ErrFormat is returned when a line is missing a field, or a field cannot be parsed.
	ErrFormat = errors.New("format error")
	// ErrIndex is returned when a document index falls outside the labels table.
	ErrIndex = errors.New("index error")
	// ErrEndOfInput is returned when a run file has fewer lines than expected.
	ErrEndOfInput = errors.New("end of input")
)
