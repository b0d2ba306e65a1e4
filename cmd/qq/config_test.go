package main

import (
	"bytes"
	"github.com/hscells/runmap"
	"log"
	"os"
	"strings"
	"testing"
)

func TestDecodeConfig(t *testing.T) {
	c, err := decodeConfig(strings.NewReader(`
[labels]
path = "/data/catb.docs.labels"
cache = true

[run]
depth = 100
`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Labels.Path != "/data/catb.docs.labels" || !c.Labels.Cache {
		t.Errorf("unexpected labels config %+v", c.Labels)
	}
	if c.Run.Depth != 100 {
		t.Errorf("expected depth 100, got %d", c.Run.Depth)
	}
	if c.Run.Topics != runmap.DefaultTopics || c.Run.Field != runmap.DefaultField || c.Run.Suffix != runmap.DefaultSuffix {
		t.Errorf("expected defaults to be kept, got %+v", c.Run)
	}
}

func TestDecodeConfigEmpty(t *testing.T) {
	c, err := decodeConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if c != defaultConfig() {
		t.Errorf("expected default config, got %+v", c)
	}
}

func TestDecodeConfigInvalid(t *testing.T) {
	if _, err := decodeConfig(strings.NewReader("[run]\ndepth = \"many\"\n")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseArgsPrecedence(t *testing.T) {
	c := defaultConfig()
	c.Labels.Path = "/data/config.labels"
	c.Run.Topics = 7
	c.Run.Depth = 9

	a, _, err := parseArgs(c, []string{"-k", "3", "run.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if a.Topics != 7 {
		t.Errorf("expected topics from config (7), got %d", a.Topics)
	}
	if a.Depth != 3 {
		t.Errorf("expected depth from flag (3), got %d", a.Depth)
	}
	if a.Labels != "/data/config.labels" {
		t.Errorf("expected labels from config, got %s", a.Labels)
	}
	if a.Field != runmap.DefaultField || a.Suffix != runmap.DefaultSuffix {
		t.Errorf("expected defaults for field and suffix, got %d %s", a.Field, a.Suffix)
	}
	if a.RunFile != "run.txt" {
		t.Errorf("expected run file run.txt, got %s", a.RunFile)
	}

	a, _, err = parseArgs(c, []string{"--labels", "/data/flag.labels", "--topics", "2", "run.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if a.Labels != "/data/flag.labels" || a.Topics != 2 || a.Depth != 9 {
		t.Errorf("unexpected args %+v", a)
	}
}

func TestParseArgsMissingRunFile(t *testing.T) {
	if _, _, err := parseArgs(defaultConfig(), []string{"-k", "3"}); err == nil {
		t.Fatal("expected an error without a run file")
	}
}

func TestLoadConfigWithoutHome(t *testing.T) {
	home, ok := os.LookupEnv("HOME")
	os.Setenv("HOME", "")
	defer func() {
		if ok {
			os.Setenv("HOME", home)
		} else {
			os.Unsetenv("HOME")
		}
	}()

	var buff bytes.Buffer
	log.SetOutput(&buff)
	defer log.SetOutput(os.Stderr)

	c, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if c != defaultConfig() {
		t.Errorf("expected default config, got %+v", c)
	}
	if !strings.Contains(buff.String(), "not reading config file") {
		t.Errorf("expected the home directory error to be logged, got %q", buff.String())
	}
}
