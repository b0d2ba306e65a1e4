package output_test

import (
	"github.com/hscells/runmap/output"
	"testing"
)

func TestSummarise(t *testing.T) {
	s, err := output.Summarise("testdata/bm25.run.qq")
	if err != nil {
		t.Fatal(err)
	}

	topics := s.Topics()
	if len(topics) != 2 || topics[0] != "401" || topics[1] != "402" {
		t.Fatalf("unexpected topics %v", topics)
	}
	if s.Results["401"] != 3 || s.Results["402"] != 2 {
		t.Errorf("unexpected results %v", s.Results)
	}
	if s.Total() != 5 {
		t.Errorf("expected 5 results, got %d", s.Total())
	}
	expected := "testdata/bm25.run.qq: 2 topics, 5 results\n401\t3\n402\t2\n"
	if s.String() != expected {
		t.Errorf("unexpected summary %q", s.String())
	}
}

func TestSummariseMissing(t *testing.T) {
	if _, err := output.Summarise("testdata/missing.qq"); err == nil {
		t.Fatal("expected an error")
	}
}
