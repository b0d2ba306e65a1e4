// Package convert rewrites the document column of run files between internal document indices and external
// document identifiers.
package convert

import (
	"bufio"
	"github.com/hscells/runmap"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
)

// Table resolves document indices to identifiers and back. Indices are 1-based.
type Table interface {
	Get(idx int) (string, error)
	Index(id string) (int, error)
}

// Converter rewrites run files using a labels table.
type Converter struct {
	table   Table
	topics  int
	depth   int
	field   int
	suffix  string
	output  string
	reverse bool
	bar     *pb.ProgressBar
}

// Option configures a Converter.
type Option func(c *Converter)

// Topics sets the number of query blocks in a run file.
func Topics(n int) Option {
	return func(c *Converter) {
		c.topics = n
	}
}

// Depth sets the number of records in each query block.
func Depth(n int) Option {
	return func(c *Converter) {
		c.depth = n
	}
}

// Field sets the zero-based column holding the document.
func Field(n int) Option {
	return func(c *Converter) {
		c.field = n
	}
}

// Suffix sets the suffix appended to the run file path to name the output file.
func Suffix(s string) Option {
	return func(c *Converter) {
		c.suffix = s
	}
}

// Output writes to the file at path instead of the run file path with the suffix appended.
func Output(path string) Option {
	return func(c *Converter) {
		c.output = path
	}
}

// Reverse maps identifiers back to indices.
func Reverse(reverse bool) Option {
	return func(c *Converter) {
		c.reverse = reverse
	}
}

// Progress increments bar once for every record written.
func Progress(bar *pb.ProgressBar) Option {
	return func(c *Converter) {
		c.bar = bar
	}
}

// New creates a converter. Without options, a converter reads 50 topics of 1000 records, rewrites the third column,
// and appends ".qq" to the output path.
func New(table Table, options ...Option) *Converter {
	c := &Converter{
		table:  table,
		topics: runmap.DefaultTopics,
		depth:  runmap.DefaultDepth,
		field:  runmap.DefaultField,
		suffix: runmap.DefaultSuffix,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Lines is the number of records a converter reads from a run file.
func (c *Converter) Lines() int {
	return c.topics * c.depth
}

// OutputPath is the path the converted version of the run file at path is written to.
func (c *Converter) OutputPath(path string) string {
	if len(c.output) > 0 {
		return c.output
	}
	return path + c.suffix
}

// Rewrite rewrites the document column of a single record.
func (c *Converter) Rewrite(r Record) (Record, error) {
	if c.field < 0 || len(r) <= c.field {
		return nil, errors.Wrapf(runmap.ErrFormat, "record has %d fields, no field %d", len(r), c.field)
	}

	if c.reverse {
		idx, err := c.table.Index(r[c.field])
		if err != nil {
			return nil, err
		}
		r[c.field] = strconv.Itoa(idx)
		return r, nil
	}

	idx, err := strconv.Atoi(r[c.field])
	if err != nil {
		return nil, errors.Wrapf(runmap.ErrFormat, "document index %q is not an integer", r[c.field])
	}
	id, err := c.table.Get(idx)
	if err != nil {
		return nil, err
	}
	r[c.field] = id
	return r, nil
}

// Convert reads exactly topics*depth lines from r and writes the rewritten lines to w. Any further lines in r are
// not read. Failures on a line are returned as a *runmap.LineError.
func (c *Converter) Convert(r io.Reader, w io.Writer) error {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), runmap.MaxLineSize)
	bw := bufio.NewWriter(w)

	for q := 0; q < c.topics; q++ {
		for k := 0; k < c.depth; k++ {
			if !s.Scan() {
				err := s.Err()
				switch {
				case err == nil:
					err = runmap.ErrEndOfInput
				case err == bufio.ErrTooLong:
					err = errors.Wrap(runmap.ErrFormat, err.Error())
				default:
					err = errors.Wrapf(runmap.ErrFileAccess, "%v", err)
				}
				return runmap.NewLineError(q, k, c.depth, err)
			}

			record, err := c.Rewrite(ParseRecord(s.Text()))
			if err != nil {
				return runmap.NewLineError(q, k, c.depth, err)
			}

			_, err = bw.WriteString(record.String())
			if err == nil {
				err = bw.WriteByte('\n')
			}
			if err != nil {
				return runmap.NewLineError(q, k, c.depth, errors.Wrapf(runmap.ErrFileAccess, "%v", err))
			}

			if c.bar != nil {
				c.bar.Increment()
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrapf(runmap.ErrFileAccess, "%v", err)
	}
	return nil
}

// ConvertFile converts the run file at path and returns the path of the output file.
//
// The output is written to a temporary file next to the output path and only moved into place once it has been
// completely written, so a failed conversion leaves no output behind (and any previous output untouched).
func (c *Converter) ConvertFile(path string) (string, error) {
	in, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(runmap.ErrFileAccess, "%v", err)
	}
	defer in.Close()

	out := c.OutputPath(path)
	tmp, err := ioutil.TempFile(filepath.Dir(out), filepath.Base(out)+".*.tmp")
	if err != nil {
		return "", errors.Wrapf(runmap.ErrFileAccess, "%v", err)
	}

	fail := func(err error) (string, error) {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}

	err = c.Convert(in, tmp)
	if err != nil {
		return fail(errors.Wrap(err, path))
	}
	if err := tmp.Chmod(0664); err != nil {
		return fail(errors.Wrapf(runmap.ErrFileAccess, "%v", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", errors.Wrapf(runmap.ErrFileAccess, "%v", err)
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		os.Remove(tmp.Name())
		return "", errors.Wrapf(runmap.ErrFileAccess, "%v", err)
	}
	return out, nil
}
