package structenv_test

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	structenv "github.com/Hanaasagi/struct-env"
	"github.com/Hanaasagi/struct-env/pkg/envsource"
)

// compatConfig uses only shapes on which both decoders agree, so the widely
// used caarlos0/env parser serves as a reference.
type compatConfig struct {
	Name    string   `env:"NAME"`
	Port    int      `env:"PORT" envDefault:"8080" default:"8080"`
	Ratio   float64  `env:"RATIO"`
	Enabled bool     `env:"ENABLED"`
	Tags    []string `env:"TAGS"`
	Sizes   []uint32 `env:"SIZES" envDefault:"1,2" default:"1,2"`
	Host    *string  `env:"HOST"`
}

func TestDecode_AgreesWithCaarlos0Env(t *testing.T) {
	t.Parallel()

	environments := []map[string]string{
		{
			"APP_NAME":    "struct-env",
			"APP_PORT":    "9000",
			"APP_RATIO":   "0.75",
			"APP_ENABLED": "TRUE",
			"APP_TAGS":    "KonoSuba,Attack on Titan",
			"APP_SIZES":   "10,20,30",
			"APP_HOST":    "example.com",
		},
		{
			"APP_NAME":    "",
			"APP_RATIO":   "-1e3",
			"APP_ENABLED": "false",
			"APP_TAGS":    "single",
		},
	}

	for _, environ := range environments {
		var want compatConfig
		err := env.ParseWithOptions(&want, env.Options{Environment: environ, Prefix: "APP_"})
		require.NoError(t, err)

		got, err := structenv.Decode[compatConfig](envsource.Map(environ), structenv.WithPrefix("APP_"))
		require.NoError(t, err)

		assert.Equal(t, want, got, "environment %v", environ)
	}
}
