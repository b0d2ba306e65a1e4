package main

import (
	"github.com/BurntSushi/toml"
	"github.com/hscells/runmap"
	"io"
	"log"
	"os"
	"path"
)

// config is read from ~/.qq.toml, e.g.:
//
//	[labels]
//	path = "/data/clueweb12/catb.docs.labels"
//	cache = true
//
//	[run]
//	topics = 50
//	depth = 1000
type config struct {
	Labels struct {
		Path  string `toml:"path"`
		Cache bool   `toml:"cache"`
	} `toml:"labels"`
	Run struct {
		Topics int    `toml:"topics"`
		Depth  int    `toml:"depth"`
		Field  int    `toml:"field"`
		Suffix string `toml:"suffix"`
	} `toml:"run"`
}

func defaultConfig() config {
	var c config
	c.Labels.Path = runmap.DefaultLabels
	c.Run.Topics = runmap.DefaultTopics
	c.Run.Depth = runmap.DefaultDepth
	c.Run.Field = runmap.DefaultField
	c.Run.Suffix = runmap.DefaultSuffix
	return c
}

// decodeConfig overlays the values in r onto the defaults.
func decodeConfig(r io.Reader) (config, error) {
	c := defaultConfig()
	_, err := toml.DecodeReader(r, &c)
	return c, err
}

// loadConfig reads the config file in the home directory, if there is one.
func loadConfig() (config, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		log.Printf("not reading config file: %v", err)
		return defaultConfig(), nil
	}

	f, err := os.Open(path.Join(dir, ".qq.toml"))
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	} else if err != nil {
		return config{}, err
	}
	defer f.Close()

	return decodeConfig(f)
}
