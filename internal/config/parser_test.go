package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	twerrors "github.com/alexisbeaulieu97/twmerge/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
log:
  level: debug
  human_readable: false
merge:
  cache_size: 128
server:
  addr: "127.0.0.1:9090"
audit:
  extensions: [".html", ".templ"]
`

	invalidYAML := `version: [1, 0]
log: {level: info}
`

	badVersion := `version: "beta"
`

	badAddr := `version: "1.0"
server:
  addr: "localhost"
`

	badExtension := `version: "1.0"
audit:
  extensions: ["html"]
`

	cases := []struct {
		name   string
		body   string
		assert func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "valid configuration overrides defaults",
			body: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "debug", cfg.Log.Level)
				require.False(t, cfg.Log.HumanReadable)
				require.Equal(t, 128, cfg.Merge.CacheSize)
				require.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
				require.Equal(t, 5*time.Second, cfg.Server.ReadTimeout(), "unset fields keep defaults")
				require.Equal(t, []string{".html", ".templ"}, cfg.Audit.Extensions)
				require.Equal(t, Default().Audit.Ignore, cfg.Audit.Ignore)
			},
		},
		{
			name: "invalid yaml returns parse error",
			body: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *twerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name: "schema version must follow major.minor",
			body: badVersion,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *twerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name: "listen address needs a port",
			body: badAddr,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *twerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "server.addr", validationErr.Field)
				require.Contains(t, validationErr.Message, "listen_addr")
			},
		},
		{
			name: "extensions start with a dot",
			body: badExtension,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *twerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "audit.extensions[0]", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.body)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *twerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "twmerge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
