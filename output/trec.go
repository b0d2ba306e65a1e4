// Package output reports on converted run files.
package output

import (
	"bytes"
	"fmt"
	"github.com/hscells/trecresults"
	"github.com/pkg/errors"
	"os"
	"sort"
)

// TrecResults summarises a converted run file as a trec run: how many results each topic has.
type TrecResults struct {
	Path    string
	Results map[string]int
}

// Summarise reads the trec run at path. Only files in the six column trec format can be summarised.
func Summarise(path string) (TrecResults, error) {
	f, err := os.Open(path)
	if err != nil {
		return TrecResults{}, err
	}
	defer f.Close()

	r, err := trecresults.ResultsFromReader(f)
	if err != nil {
		return TrecResults{}, errors.Wrapf(err, "%s is not a trec run", path)
	}

	s := TrecResults{
		Path:    path,
		Results: make(map[string]int, len(r.Results)),
	}
	for topic, list := range r.Results {
		s.Results[topic] = len(list)
	}
	return s, nil
}

// Topics are the topics in the run, sorted.
func (t TrecResults) Topics() []string {
	topics := make([]string, 0, len(t.Results))
	for topic := range t.Results {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// Total is the number of results over all topics.
func (t TrecResults) Total() int {
	n := 0
	for _, v := range t.Results {
		n += v
	}
	return n
}

func (t TrecResults) String() string {
	var buff bytes.Buffer
	buff.WriteString(fmt.Sprintf("%s: %d topics, %d results\n", t.Path, len(t.Results), t.Total()))
	for _, topic := range t.Topics() {
		buff.WriteString(fmt.Sprintf("%s\t%d\n", topic, t.Results[topic]))
	}
	return buff.String()
}
