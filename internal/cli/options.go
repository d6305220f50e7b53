// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"almanac/internal/config"
)

// Run modes.
const (
	ModeValues = "values"
	ModeRanges = "ranges"
	ModeBoth   = "both"
)

// Options holds the resolved solve/check settings.
type Options struct {
	ConfigFile string

	// Pipeline
	Mode    string
	Workers int

	// Output
	Output          string // text|json|jsonl
	EmitRanges      bool
	Header          bool
	NoMatchExitCode int

	// Check
	ExhaustiveLimit int64

	// Logging
	Verbose   bool
	LogLevel  string
	LogFormat string

	Input string
}

// Flags remembers the raw flag storage that does not map 1:1 onto Options.
type Flags struct {
	fs       *pflag.FlagSet
	noHeader bool
}

// Register wires the shared flags onto fs. Defaults come from config.Default
// so an untouched flag and an absent config key agree.
func Register(fs *pflag.FlagSet, o *Options) *Flags {
	d := config.Default()
	f := &Flags{fs: fs}

	fs.StringVar(&o.ConfigFile, "config", "", "YAML file with default settings")

	fs.StringVarP(&o.Mode, "mode", "m", d.Mode, "seed interpretation: values | ranges | both")
	fs.IntVarP(&o.Workers, "workers", "w", d.Workers, "goroutines per stage (0=all CPUs)")

	fs.StringVarP(&o.Output, "output", "o", d.Output, "output: text | json | jsonl")
	fs.BoolVar(&o.EmitRanges, "emit-ranges", d.EmitRanges, "include the final location ranges in the report")
	fs.BoolVar(&f.noHeader, "no-header", false, "suppress header lines in text output")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", *d.NoMatchExitCode, "exit code when the final set is empty")

	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "debug logging")
	fs.StringVar(&o.LogFormat, "log-format", d.Log.Format, "log encoding: console | json")

	o.Header = *d.Header
	o.LogLevel = d.Log.Level
	return f
}

// RegisterCheck adds the check-only flags.
func RegisterCheck(fs *pflag.FlagSet, o *Options) {
	fs.Int64Var(&o.ExhaustiveLimit, "exhaustive-limit", config.Default().ExhaustiveLimit,
		"enumerate every seed value when the seed ranges hold at most N values (0=never)")
}

// Resolve applies the config file (when --config is given) under any flag the
// user set explicitly, then validates.
func (f *Flags) Resolve(o *Options) error {
	cfg := config.Default()
	if o.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(o.ConfigFile); err != nil {
			return err
		}
	}
	f.apply(o, cfg)
	return Validate(o)
}

func (f *Flags) apply(o *Options, cfg config.Config) {
	if !f.fs.Changed("mode") {
		o.Mode = cfg.Mode
	}
	if !f.fs.Changed("workers") {
		o.Workers = cfg.Workers
	}
	if !f.fs.Changed("output") {
		o.Output = cfg.Output
	}
	if !f.fs.Changed("emit-ranges") {
		o.EmitRanges = cfg.EmitRanges
	}
	if f.fs.Changed("no-header") {
		o.Header = !f.noHeader
	} else if cfg.Header != nil {
		o.Header = *cfg.Header
	}
	if !f.fs.Changed("no-match-exit-code") && cfg.NoMatchExitCode != nil {
		o.NoMatchExitCode = *cfg.NoMatchExitCode
	}
	if f.fs.Lookup("exhaustive-limit") != nil && !f.fs.Changed("exhaustive-limit") {
		o.ExhaustiveLimit = cfg.ExhaustiveLimit
	}
	if !f.fs.Changed("log-format") {
		o.LogFormat = cfg.Log.Format
	}
	o.LogLevel = cfg.Log.Level
	if o.Verbose {
		o.LogLevel = "debug"
	}
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	switch o.Mode {
	case ModeValues, ModeRanges, ModeBoth:
	default:
		return fmt.Errorf("invalid --mode %q", o.Mode)
	}
	switch o.Output {
	case "text", "json", "jsonl":
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Workers < 0 {
		return errors.New("--workers must be ≥ 0")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	if o.ExhaustiveLimit < 0 {
		return errors.New("--exhaustive-limit must be ≥ 0")
	}
	switch o.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("invalid --log-format %q", o.LogFormat)
	}
	return nil
}
