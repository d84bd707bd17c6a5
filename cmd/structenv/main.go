// Command structenv decodes a demo settings struct from the environment and
// prints it.
//
//	GITHUB_JOB=build structenv -prefix GITHUB_ -o yaml
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v3"

	structenv "github.com/Hanaasagi/struct-env"
	"github.com/Hanaasagi/struct-env/pkg/envsource"
	"github.com/Hanaasagi/struct-env/pkg/logger"
)

var errUnknownOutput = errors.New("unknown output format")

// fileList collects repeated -env-file flags.
type fileList []string

func (f *fileList) String() string { return strings.Join(*f, ",") }

func (f *fileList) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args, environ []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("structenv", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		prefix   = fs.String("prefix", "GITHUB_", "prefix prepended to every key")
		output   = fs.String("o", "text", "output format: text, json, yaml or dump")
		logLevel = fs.String("log-level", "info", "log level: debug, info, warn or error")
		files    fileList
	)
	fs.Var(&files, "env-file", "read fallback values from a .env file (repeatable)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(stderr, "structenv: %v\n", err)
		return err
	}

	logOpts := []logger.Option{logger.WithLevel(level)}
	if f, ok := stderr.(*os.File); ok {
		logOpts = append(logOpts, logger.WithAutoFormat(f))
	} else {
		logOpts = append(logOpts, logger.WithOutput(stderr), logger.WithTextFormatter())
	}
	log := logger.New(logOpts...)

	snap := envsource.FromEnviron(environ)
	defer snap.Close()

	var src envsource.Source = snap
	if len(files) > 0 {
		values, err := envsource.Dotenv(files...)
		if err != nil {
			log.Error("failed to read env files", logger.Files(files...), logger.Error(err))
			return err
		}
		src = envsource.Overlay(snap, values)
		log.Debug("env files loaded", logger.Files(files...))
	}

	settings, err := structenv.Decode[Settings](src,
		structenv.WithPrefix(*prefix),
		structenv.WithLogger(log),
	)
	if err != nil {
		source := logger.Group("source", logger.Prefix(*prefix), logger.Files(files...))
		var fe *structenv.FieldError
		if errors.As(err, &fe) {
			log.Error("failed to decode settings", source,
				logger.Field(fe.Field), logger.Key(fe.Key), logger.Errors(fe.Err, fe.Cause))
		} else {
			log.Error("failed to decode settings", source, logger.Error(err))
		}
		return err
	}
	defer structenv.Release(&settings)

	if err := render(stdout, *output, settings); err != nil {
		log.Error("failed to print settings", logger.Error(err))
		return err
	}
	return nil
}

func render(w io.Writer, format string, s Settings) error {
	switch format {
	case "text":
		_, err := fmt.Fprintf(w, "%+v\n", s)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case "dump":
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
		cfg.Fdump(w, s)
		return nil
	default:
		return fmt.Errorf("%w: %q", errUnknownOutput, format)
	}
}
