package convert

import (
	"strings"
)

// Record is a single line of a run file, split into its whitespace delimited fields.
type Record []string

// ParseRecord splits a line on runs of whitespace.
func ParseRecord(line string) Record {
	return strings.Fields(line)
}

// String joins the fields of the record with single spaces. The original separators are not preserved.
func (r Record) String() string {
	return strings.Join(r, " ")
}
