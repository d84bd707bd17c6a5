package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	structenv "github.com/Hanaasagi/struct-env"
)

func TestRun_JSON(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{"-o", "json"}, []string{
		"GITHUB_JOB=build",
		"GITHUB_DEBUG=true",
		"GITHUB_DB_PORT=6543",
		"GITHUB_ANIMES=KonoSuba,Attack on Titan,Frieren",
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	var got Settings
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "build", got.Job)
	assert.True(t, got.Debug)
	assert.Equal(t, "/github/workspace", got.Workspace)
	assert.Equal(t, Level("info"), got.LogLevel)
	assert.Equal(t, []string{"KonoSuba", "Attack on Titan", "Frieren"}, got.Animes)
	assert.Equal(t, Database{Host: "localhost", Port: 6543}, got.Database)
	assert.Nil(t, got.Token)
}

func TestRun_YAML(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{"-o", "yaml", "-prefix", "CI_"}, []string{"CI_JOB=test", "CI_TOKEN=secret"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	var got Settings
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "test", got.Job)
	assert.False(t, got.Debug)
	require.NotNil(t, got.Token)
	assert.Equal(t, "secret", *got.Token)
}

func TestRun_Dump(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{"-o", "dump"}, []string{"GITHUB_JOB=dump"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Job: (string) (len=4) \"dump\"")
}

func TestRun_EnvFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GITHUB_JOB=from_file\nGITHUB_RATIO=2.5\n"), 0o600))

	var stdout, stderr bytes.Buffer
	err := run([]string{"-o", "json", "-env-file", path}, []string{"GITHUB_RATIO=0.5"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	var got Settings
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "from_file", got.Job)
	assert.Equal(t, 0.5, got.Ratio, "the environment wins over env files")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing job", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := run(nil, nil, &stdout, &stderr)
		assert.ErrorIs(t, err, structenv.ErrNotExist)
		assert.Contains(t, stderr.String(), "failed to decode settings")
		assert.Contains(t, stderr.String(), "source.prefix=GITHUB_")
		assert.Contains(t, stderr.String(), "key=GITHUB_JOB")
		assert.Contains(t, stderr.String(), `errors.0="key does not exist"`)
		assert.Empty(t, stdout.String())
	})

	t.Run("invalid enum", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := run(nil, []string{"GITHUB_JOB=x", "GITHUB_LOG_LEVEL=trace"}, &stdout, &stderr)
		assert.ErrorIs(t, err, structenv.ErrInvalidValue)
		assert.Contains(t, stderr.String(), "errors.0=\"invalid value\"")
		assert.Contains(t, stderr.String(), "errors.1=")
	})

	t.Run("unknown output", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := run([]string{"-o", "xml"}, []string{"GITHUB_JOB=x"}, &stdout, &stderr)
		assert.ErrorIs(t, err, errUnknownOutput)
	})

	t.Run("missing env file", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := run([]string{"-env-file", filepath.Join(t.TempDir(), "nope")}, nil, &stdout, &stderr)
		assert.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Parallel()
		var stdout, stderr bytes.Buffer
		err := run([]string{"-log-level", "loud"}, nil, &stdout, &stderr)
		assert.Error(t, err)
	})
}

func TestRun_DebugLogging(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run([]string{"-log-level", "debug"}, []string{"GITHUB_JOB=x"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "default applied")
}
