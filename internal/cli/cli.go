// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment keys consulted when the matching flag is not given.
const (
	EnvFormat    = "TIERPLAN_FORMAT"
	EnvLogLevel  = "TIERPLAN_LOG_LEVEL"
	EnvLogFormat = "TIERPLAN_LOG_FORMAT"

	defaultEnvFile = ".env"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// Config is the resolved command configuration.
type Config struct {
	PlanPath  string
	Format    string // "text" or "json"
	LogLevel  string // "debug", "info", "warn" or "error"
	LogFormat string // "text" or "json"
	EnvFile   string
}

// LookupEnv reads one environment variable.
type LookupEnv func(key string) (string, bool)

// Parse processes command-line arguments against the process environment.
// It returns the Config, a boolean telling the caller to exit cleanly
// (help was printed), or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	return ParseEnv(args, output, os.LookupEnv)
}

// ParseEnv is Parse with an explicit environment.
func ParseEnv(args []string, output io.Writer, env LookupEnv) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("tierplan", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
tierplan - validate a task plan and print its parallel execution tiers.

Usage:
  tierplan [options] PLAN_FILE

Arguments:
  PLAN_FILE
    Path to an HCL plan file made of task blocks.

Environment:
  TIERPLAN_FORMAT, TIERPLAN_LOG_LEVEL, TIERPLAN_LOG_FORMAT
    Fallbacks for -format, -log-level and -log-format.

Options:
`)
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("file", "", "Path to the plan file.")
	fFlag := flagSet.String("f", "", "Path to the plan file (shorthand).")
	formatFlag := flagSet.String("format", "text", "Output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	envFileFlag := flagSet.String("env-file", defaultEnvFile, "Optional dotenv file with TIERPLAN_* settings.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}

	set := map[string]bool{}
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var path string
	switch {
	case *fileFlag != "":
		path = *fileFlag
	case *fFlag != "":
		path = *fFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	dotenv, err := readEnvFile(*envFileFlag, set["env-file"])
	if err != nil {
		return nil, false, usageError("env-file: %v", err)
	}
	resolve := func(name, key string, flagVal *string) string {
		if set[name] {
			return *flagVal
		}
		if v, ok := env(key); ok && v != "" {
			return v
		}
		if v, ok := dotenv[key]; ok && v != "" {
			return v
		}
		return *flagVal
	}

	cfg := &Config{
		PlanPath:  path,
		Format:    strings.ToLower(resolve("format", EnvFormat, formatFlag)),
		LogLevel:  strings.ToLower(resolve("log-level", EnvLogLevel, logLevelFlag)),
		LogFormat: strings.ToLower(resolve("log-format", EnvLogFormat, logFormatFlag)),
		EnvFile:   *envFileFlag,
	}
	if err := cfg.validate(); err != nil {
		return nil, false, err
	}

	return cfg, false, nil
}

// readEnvFile loads path with godotenv. A missing default file is not an error.
func readEnvFile(path string, explicit bool) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	vals, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	return vals, nil
}

func (c *Config) validate() error {
	switch c.Format {
	case "text", "json":
	default:
		return usageError("invalid format %q: must be 'text' or 'json'", c.Format)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return usageError("%v", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return usageError("invalid log-format %q: must be 'text' or 'json'", c.LogFormat)
	}

	return nil
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", name)
	}
}
