package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetteup/gmdirectory/cmd/gmdirectory/internal/config"
	"github.com/cetteup/gmdirectory/internal"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name            string
		content         *string
		want            config.Config
		wantErrContains string
	}{
		{
			name: "uses defaults if file does not exist",
			want: config.Default(),
		},
		{
			name:    "overrides defaults with file values",
			content: internal.ToPointer("api:\n  baseUrl: http://localhost:9000/pub\n  timeout: 10s\ncors:\n  allowedOrigins:\n    - https://gm.example.com\n"),
			want: config.Config{
				API: config.APIConfig{
					BaseURL:   "http://localhost:9000/pub",
					UserAgent: config.Default().API.UserAgent,
					Timeout:   10 * time.Second,
				},
				CORS: config.CORSConfig{
					AllowedOrigins: []string{"https://gm.example.com"},
				},
			},
		},
		{
			name:            "fails for invalid base URL",
			content:         internal.ToPointer("api:\n  baseUrl: not a url\n"),
			wantErrContains: "invalid config",
		},
		{
			name:            "fails for negative timeout",
			content:         internal.ToPointer("api:\n  timeout: -1s\n"),
			wantErrContains: "Timeout",
		},
		{
			name:            "fails for malformed YAML",
			content:         internal.ToPointer("api: [\n"),
			wantErrContains: "yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o600))
			}

			// WHEN
			actual, err := config.LoadConfig(path)

			// THEN
			if tt.wantErrContains != "" {
				assert.ErrorContains(t, err, tt.wantErrContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, actual)
			}
		})
	}
}
