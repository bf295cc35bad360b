package options

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cetteup/gmdirectory/internal/chesscom"
)

const (
	CommandList  = "list"
	CommandWatch = "watch"
)

type Options struct {
	Version bool

	Debug        bool
	ColorizeLogs bool

	BaseURL string
	Timeout time.Duration

	Search string
	Page   int

	Command  string
	Username string
}

func Init() *Options {
	flag.Usage = usage
	// CommandLine exits on parse errors
	opts, _ := Parse(flag.CommandLine, os.Args[1:])
	return opts
}

// Parse Parse args into options, allowing flags both before and after the command and its username
func Parse(fs *flag.FlagSet, args []string) (*Options, error) {
	opts := new(Options)
	fs.BoolVar(&opts.Version, "v", false, "prints the version")
	fs.BoolVar(&opts.Version, "version", false, "prints the version")
	fs.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	fs.BoolVar(&opts.ColorizeLogs, "colorize-logs", false, "colorize log messages")
	fs.StringVar(&opts.BaseURL, "base-url", chesscom.DefaultBaseURL, "chess.com published-data API base URL")
	fs.DurationVar(&opts.Timeout, "timeout", 0, "timeout for API requests (0 to disable)")
	fs.StringVar(&opts.Search, "search", "", "only list usernames containing this term (case-insensitive)")
	fs.IntVar(&opts.Page, "page", 1, "page of the directory to list")

	// Parse stops at the first non-flag argument, so continue after each one
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}

	if len(positional) > 0 {
		opts.Command = positional[0]
	}
	if len(positional) > 1 {
		opts.Username = positional[1]
	}
	return opts, nil
}

func usage() {
	out := flag.CommandLine.Output()
	_, _ = fmt.Fprintf(out, "Usage: %s [flags] list\n", os.Args[0])
	_, _ = fmt.Fprintf(out, "       %s [flags] watch <username>\n\n", os.Args[0])
	flag.PrintDefaults()
}
