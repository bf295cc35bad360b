package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cetteup/gmdirectory/cmd/gmcli/internal/options"
	"github.com/cetteup/gmdirectory/internal/chesscom"
	"github.com/cetteup/gmdirectory/internal/detail"
	"github.com/cetteup/gmdirectory/internal/directory"
	"github.com/cetteup/gmdirectory/internal/domain/player"
	"github.com/cetteup/gmdirectory/internal/elapsed"
	"github.com/cetteup/gmdirectory/internal/trace"
)

var (
	buildVersion = "development"
	buildCommit  = "uncommitted"
	buildTime    = "unknown"
)

func main() {
	version := fmt.Sprintf("gmcli %s (%s) built at %s", buildVersion, buildCommit, buildTime)
	opts := options.Init()

	// Print version and exit
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	// Logs go to stderr, stdout is reserved for command output
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    !opts.ColorizeLogs,
		TimeFormat: time.RFC3339,
	})
	if opts.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := chesscom.NewClient(opts.BaseURL, opts.Timeout)

	var err error
	switch opts.Command {
	case options.CommandList:
		err = list(ctx, os.Stdout, client, opts.Search, opts.Page)
	case options.CommandWatch:
		if opts.Username == "" {
			flag.Usage()
			os.Exit(2)
		}
		err = watch(ctx, os.Stdout, client, opts.Username)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal().
			Err(err).
			Str("command", opts.Command).
			Msg("Command failed")
	}
}

type lister interface {
	ListTitledPlayers(ctx context.Context) ([]string, error)
}

func list(ctx context.Context, w io.Writer, client lister, search string, page int) error {
	usernames, err := client.ListTitledPlayers(ctx)
	if err != nil {
		return err
	}

	p := directory.ComputePage(usernames, search, page)
	log.Debug().
		Str(trace.LogSearch, search).
		Int(trace.LogPage, page).
		Int("matches", p.TotalMatches).
		Msg("Computed directory page")

	if p.TotalMatches == 0 && search != "" {
		_, err = fmt.Fprintf(w, "No grandmasters found matching %q\n", search)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, username := range p.Items {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", p.Offset()+i+1, username, player.ProfileURL(username))
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Page %d of %d (%d grandmasters)\n", p.Page, p.TotalPages, p.TotalMatches)
	return err
}

type profiler interface {
	GetPlayerDetails(ctx context.Context, username string) (player.Detail, error)
	GetCountryDetails(ctx context.Context, countryRef string) (player.Country, error)
}

// watch Print the player's profile, then keep the time since they were last online updated in place until ctx is done
func watch(ctx context.Context, w io.Writer, client profiler, username string) error {
	view := detail.NewView(client, username)
	if err := view.Load(ctx); err != nil {
		_, _ = fmt.Fprintln(w, view.Message())
		return err
	}

	s := view.Snapshot()
	printDetail(w, s)

	stopUpdates, ok := view.WatchElapsed(ctx, func(e string) {
		_, _ = fmt.Fprintf(w, "\rTime since last online: %s", e)
	})
	defer stopUpdates()
	if !ok {
		return nil
	}

	<-ctx.Done()
	stopUpdates()
	_, _ = fmt.Fprintln(w)
	return nil
}

func printDetail(w io.Writer, s detail.Snapshot) {
	d := s.Detail
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Name:\t%s (@%s)\n", d.DisplayName(), d.Username)
	if d.Title != "" {
		_, _ = fmt.Fprintf(tw, "Title:\t%s\n", d.Title)
	}
	if country := s.DisplayCountry(); country != "" {
		_, _ = fmt.Fprintf(tw, "Country:\t%s\n", country)
	}
	if d.Location != "" {
		_, _ = fmt.Fprintf(tw, "Location:\t%s\n", d.Location)
	}
	_, _ = fmt.Fprintf(tw, "Followers:\t%d\n", d.Followers)
	_, _ = fmt.Fprintf(tw, "Status:\t%s\n", d.Status)
	if d.IsStreamer {
		_, _ = fmt.Fprintf(tw, "Streamer:\tyes\n")
	}
	if d.Verified {
		_, _ = fmt.Fprintf(tw, "Verified:\tyes\n")
	}
	_, _ = fmt.Fprintf(tw, "Joined:\t%s\n", elapsed.FormatDate(d.Joined))
	if d.LastOnline != 0 {
		_, _ = fmt.Fprintf(tw, "Last seen:\t%s\n", elapsed.FormatDate(d.LastOnline))
	}
	_, _ = fmt.Fprintf(tw, "Profile:\t%s\n", d.URL)
	_ = tw.Flush()
}
