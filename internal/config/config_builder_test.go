package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/MKhiriev/tsconfig-paths/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempParams(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "params-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CWD", "FORMAT", "LOG_LEVEL", "PARAMS"} {
		t.Setenv(EnvPrefix+key, "")
		require.NoError(t, os.Unsetenv(EnvPrefix+key))
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources returns the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	opts, err := newOptionsBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newOptionsBuilder()
	b.err = assert.AnError

	opts, err := b.build()
	assert.Nil(t, opts)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a later source overrides the
// non-zero fields of an earlier one and leaves the rest alone.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newOptionsBuilder()
	b.options = append(b.options,
		&Options{Cwd: "/from-env", Format: FormatYAML},
		&Options{Cwd: "/from-flags"},
	)

	opts, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/from-flags", opts.Cwd)
	assert.Equal(t, FormatYAML, opts.Format)
	assert.Equal(t, "info", opts.LogLevel)
}

func TestBuild_Validates(t *testing.T) {
	b := newOptionsBuilder()
	b.options = append(b.options, &Options{Format: "xml"})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOpWhenNoPathSet(t *testing.T) {
	b := newOptionsBuilder()
	b.options = append(b.options, &Options{})
	b.withJSON()

	assert.Len(t, b.options, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	path := writeTempParams(t, models.ExplicitParams{BaseURL: "last-wins"})

	b := newOptionsBuilder()
	b.options = append(b.options,
		&Options{ParamsFilePath: "/nonexistent/params.json"},
		&Options{ParamsFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.options, 3)
	assert.Equal(t, "last-wins", b.options[2].Params.BaseURL)
}

func TestWithJSON_SetsErrorWhenFileMissing(t *testing.T) {
	b := newOptionsBuilder()
	b.options = append(b.options, &Options{ParamsFilePath: "/nonexistent/params.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── GetOptions ────────────────────────────────────────────────────────────────

func TestGetOptions_Defaults(t *testing.T) {
	clearEnv(t)

	opts, err := GetOptions(nil)

	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestGetOptions_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TS_PATHS_CWD", "/env/dir")
	t.Setenv("TS_PATHS_FORMAT", "yaml")

	opts, err := GetOptions([]string{"-P", "/flag/dir", "-log-level", "debug"})

	require.NoError(t, err)
	assert.Equal(t, "/flag/dir", opts.Cwd)
	assert.Equal(t, FormatYAML, opts.Format)
	assert.Equal(t, "debug", opts.LogLevel)
}

func TestGetOptions_LoadsParamsFile(t *testing.T) {
	clearEnv(t)
	matchAll := true
	path := writeTempParams(t, models.ExplicitParams{
		BaseURL:     "./src",
		Paths:       map[string][]string{"@/*": {"*"}},
		AddMatchAll: &matchAll,
	})
	t.Setenv("TS_PATHS_PARAMS", path)

	opts, err := GetOptions(nil)

	require.NoError(t, err)
	require.NotNil(t, opts.Params)
	assert.Equal(t, path, opts.ParamsFilePath)
	assert.Equal(t, "./src", opts.Params.BaseURL)
	assert.Equal(t, map[string][]string{"@/*": {"*"}}, opts.Params.Paths)
	require.NotNil(t, opts.Params.AddMatchAll)
	assert.True(t, *opts.Params.AddMatchAll)
}

func TestGetOptions_CollectsErrors(t *testing.T) {
	clearEnv(t)

	_, err := GetOptions([]string{"-params", "/nonexistent/params.json", "-format", "yaml", "extra"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedArgs)
}

func TestGetOptions_InvalidLogLevel(t *testing.T) {
	clearEnv(t)

	_, err := GetOptions([]string{"-log-level", "chatty"})

	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}
