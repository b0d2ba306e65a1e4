package main

import (
	"fmt"
	"github.com/alexflint/go-arg"
	"github.com/hscells/runmap/convert"
	"github.com/hscells/runmap/labels"
	"github.com/hscells/runmap/output"
	"gopkg.in/cheggaaa/pb.v1"
	"log"
	"os"
)

var (
	name    = "qq"
	version = "19.Oct.2026"
	author  = "Harry Scells"
)

type args struct {
	Labels   string `help:"Path to labels file (document identifier in the first column)" arg:"-l"`
	Cache    bool   `help:"Cache the parsed labels file on disk" arg:"-c"`
	Topics   int    `help:"Number of topics in the run file" arg:"-t"`
	Depth    int    `help:"Number of results for each topic" arg:"-k"`
	Field    int    `help:"Zero-based column containing the document" arg:"-f"`
	Suffix   string `help:"Suffix appended to the run file to name the output" arg:"-s"`
	Output   string `help:"Name of output file (overrides suffix)" arg:"-o"`
	Reverse  bool   `help:"Map document identifiers back to indices" arg:"-r"`
	Progress bool   `help:"Show a progress bar" arg:"-p"`
	Summary  bool   `help:"Print the number of results for each topic in the output"`
	Debug    bool   `help:"Print the stack trace of errors"`
	RunFile  string `help:"Path to run file" arg:"required,positional"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s
@ %s
# %s`, name, author, version)
}

// parseArgs parses argv on top of the values in the config, so that flags take precedence over the config file.
func parseArgs(c config, argv []string) (args, *arg.Parser, error) {
	a := args{
		Labels: c.Labels.Path,
		Cache:  c.Labels.Cache,
		Topics: c.Run.Topics,
		Depth:  c.Run.Depth,
		Field:  c.Run.Field,
		Suffix: c.Run.Suffix,
	}
	p, err := arg.NewParser(arg.Config{Program: name}, &a)
	if err != nil {
		return a, nil, err
	}
	err = p.Parse(argv)
	return a, p, err
}

func main() {
	c, err := loadConfig()
	if err != nil {
		log.Fatalln(err)
	}

	args, p, err := parseArgs(c, os.Args[1:])
	switch {
	case p == nil:
		log.Fatalln(err)
	case err == arg.ErrHelp:
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	case err == arg.ErrVersion:
		fmt.Println(version)
		os.Exit(0)
	case err != nil:
		p.Fail(err.Error())
	}

	fatal := func(err error) {
		if args.Debug {
			log.Fatalf("%+v\n", err)
		}
		log.Fatalln(err)
	}

	var table *labels.Table
	if args.Cache {
		var dir string
		dir, err = labels.DefaultCacheDir()
		if err != nil {
			fatal(err)
		}
		table, err = labels.NewCache(dir).Load(args.Labels)
	} else {
		table, err = labels.Load(args.Labels)
	}
	if err != nil {
		fatal(err)
	}

	options := []convert.Option{
		convert.Topics(args.Topics),
		convert.Depth(args.Depth),
		convert.Field(args.Field),
		convert.Suffix(args.Suffix),
		convert.Output(args.Output),
		convert.Reverse(args.Reverse),
	}

	var bar *pb.ProgressBar
	if args.Progress {
		bar = pb.New(args.Topics * args.Depth)
		bar.Output = os.Stderr
		bar.Start()
		options = append(options, convert.Progress(bar))
	}

	log.Printf("converting %s...", args.RunFile)
	out, err := convert.New(table, options...).ConvertFile(args.RunFile)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		fatal(err)
	}
	log.Printf("wrote %s", out)

	if args.Summary {
		s, err := output.Summarise(out)
		if err != nil {
			log.Println(err)
			return
		}
		fmt.Print(s)
	}
}
