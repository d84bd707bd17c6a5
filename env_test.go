package structenv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	structenv "github.com/Hanaasagi/struct-env"
)

type githubEnv struct {
	Job       string `env:"job"`
	Workspace string `env:"workspace" default:"/github/workspace"`
	Debug     *bool  `env:"debug"`
}

func TestFromEnv(t *testing.T) {
	t.Setenv("STRUCTENV_TEST_JOB", "build")

	got, err := structenv.FromEnv[githubEnv](structenv.WithPrefix("STRUCTENV_TEST_"))
	require.NoError(t, err)
	assert.Equal(t, "build", got.Job)
	assert.Equal(t, "/github/workspace", got.Workspace)
	assert.Nil(t, got.Debug)
}

func TestFromEnv_Missing(t *testing.T) {
	_, err := structenv.FromEnv[githubEnv](structenv.WithPrefix("STRUCTENV_MISSING_"))
	assert.ErrorIs(t, err, structenv.ErrNotExist)
}

func TestMustFromEnv(t *testing.T) {
	t.Setenv("STRUCTENV_MUST_JOB", "deploy")

	assert.NotPanics(t, func() {
		got := structenv.MustFromEnv[githubEnv](structenv.WithPrefix("STRUCTENV_MUST_"))
		assert.Equal(t, "deploy", got.Job)
	})

	assert.Panics(t, func() {
		structenv.MustFromEnv[githubEnv](structenv.WithPrefix("STRUCTENV_NOPE_"))
	})
}
