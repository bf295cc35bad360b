package options_test

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetteup/gmdirectory/cmd/gmcli/internal/options"
	"github.com/cetteup/gmdirectory/internal/chesscom"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		want            options.Options
		wantErrContains string
	}{
		{
			name: "parses flags before command",
			args: []string{"-search", "magnus", "-page", "2", "list"},
			want: options.Options{BaseURL: chesscom.DefaultBaseURL, Search: "magnus", Page: 2, Command: options.CommandList},
		},
		{
			name: "parses flags after command",
			args: []string{"list", "-search", "magnus", "-page", "2"},
			want: options.Options{BaseURL: chesscom.DefaultBaseURL, Search: "magnus", Page: 2, Command: options.CommandList},
		},
		{
			name: "parses flags around command",
			args: []string{"-debug", "list", "-page", "3"},
			want: options.Options{Debug: true, BaseURL: chesscom.DefaultBaseURL, Page: 3, Command: options.CommandList},
		},
		{
			name: "parses username with flags after it",
			args: []string{"watch", "magnuscarlsen", "-timeout", "5s", "-base-url", "http://localhost:9000/pub"},
			want: options.Options{
				BaseURL:  "http://localhost:9000/pub",
				Timeout:  5 * time.Second,
				Page:     1,
				Command:  options.CommandWatch,
				Username: "magnuscarlsen",
			},
		},
		{
			name: "uses defaults without arguments",
			want: options.Options{BaseURL: chesscom.DefaultBaseURL, Page: 1},
		},
		{
			name:            "fails for unknown flag after command",
			args:            []string{"list", "-rank", "1"},
			wantErrContains: "flag provided but not defined: -rank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN
			fs := flag.NewFlagSet("gmcli", flag.ContinueOnError)
			fs.SetOutput(io.Discard)

			// WHEN
			actual, err := options.Parse(fs, tt.args)

			// THEN
			if tt.wantErrContains != "" {
				assert.ErrorContains(t, err, tt.wantErrContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, *actual)
			}
		})
	}
}
