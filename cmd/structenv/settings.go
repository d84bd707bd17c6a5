package main

// Level is the demo log level enum.
type Level string

func (Level) Variants() []string { return []string{"debug", "info", "warn", "error"} }

// Database is a nested record read with the DB_ prefix.
type Database struct {
	Host string `env:"host" default:"localhost" yaml:"host" json:"host"`
	Port uint16 `env:"port" default:"5432" yaml:"port" json:"port"`
}

// Settings mirrors the variables a GitHub Actions job exposes, plus a few
// made-up ones to show every supported shape.
type Settings struct {
	Job       string   `env:"job" yaml:"job" json:"job"`
	Workspace string   `env:"workspace" default:"/github/workspace" yaml:"workspace" json:"workspace"`
	RunNumber uint32   `env:"run_number" default:"1" yaml:"run_number" json:"run_number"`
	Debug     bool     `env:"debug" default:"false" yaml:"debug" json:"debug"`
	Token     *string  `env:"token" yaml:"token,omitempty" json:"token,omitempty"`
	LogLevel  Level    `env:"log_level" default:"info" yaml:"log_level" json:"log_level"`
	Animes    []string `env:"animes" default:"KonoSuba,Attack on Titan" yaml:"animes" json:"animes"`
	Ratio     float64  `env:"ratio" default:"1.5" yaml:"ratio" json:"ratio"`
	Database  Database `prefix:"DB_" yaml:"database" json:"database"`
}
