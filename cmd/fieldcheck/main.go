// Command fieldcheck validates form field values from the command line.
//
//	fieldcheck -kind email user@example.com
//	fieldcheck -kind 'custom:^[a-z]+\d+$' abc123
//	fieldcheck -form signup.yaml -output json
//
// Exit status is 0 when every field passes, 1 when any field fails and 2 for
// usage, configuration or input errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formfield/pkg/config"
	"github.com/dmitrymomot/formfield/pkg/logger"
	"github.com/dmitrymomot/formfield/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

type runIDKey struct{}

func main() {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(envPrefix)); err != nil {
		fmt.Fprintln(os.Stderr, "fieldcheck:", err)
		os.Exit(exitUsage)
	}

	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fieldcheck:", err)
		os.Exit(exitUsage)
	}

	logger.SetAsDefault(log)

	ctx := context.WithValue(context.Background(), runIDKey{}, uuid.NewString())
	os.Exit(run(ctx, os.Args[1:], cfg, log, os.Stdout, os.Stderr))
}

// newLogger turns logger option panics into errors so bad configuration
// exits with a usage status.
func newLogger(cfg Config, w io.Writer) (log *slog.Logger, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("logger configuration: %v", r)
		}
	}()
	return logger.New(
		logger.WithEnvironment(cfg.Env, "fieldcheck"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(w),
		logger.WithContextValue("run_id", runIDKey{}),
	), nil
}

func run(ctx context.Context, args []string, cfg Config, log *slog.Logger, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fieldcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kindName := fs.String("kind", "", "validation kind for a single value (email, name, surname, phone, password, postal_code, national_id, custom:<pattern>)")
	formPath := fs.String("form", "", "path to a YAML or JSON form file")
	output := fs.String("output", cfg.Output, "result format: text or json")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	entries, err := collectEntries(*kindName, *formPath, fs.Args())
	if err != nil {
		log.ErrorContext(ctx, "cannot read input", logger.Error(err))
		fmt.Fprintln(stderr, "fieldcheck:", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
		}
		return exitUsage
	}

	v := validator.New(validator.WithLogger(log.With(logger.Component("validator"))))

	formEntries := make([]validator.FormEntry, len(entries))
	for i, e := range entries {
		formEntries[i] = e.Entry
	}
	results := v.ValidateForm(formEntries)

	reports := make([]report, len(results))
	status := exitOK
	for i, res := range results {
		reports[i] = report{Field: entries[i].Name, FormResult: res}
		if !res.Passed {
			status = exitInvalid
		}
		log.DebugContext(ctx, "field checked",
			logger.Field(entries[i].Name),
			logger.Kind(res.Kind),
			logger.Passed(res.Passed),
		)
	}

	if err := writeReports(stdout, *output, reports); err != nil {
		log.ErrorContext(ctx, "cannot write results", logger.Error(err))
		fmt.Fprintln(stderr, "fieldcheck:", err)
		return exitUsage
	}

	log.InfoContext(ctx, "validation finished",
		slog.Int("fields", len(results)),
		slog.Int("exit_status", status),
	)
	return status
}

var errUsage = errors.New("usage")

func collectEntries(kindName, formPath string, args []string) ([]namedEntry, error) {
	switch {
	case formPath != "" && kindName != "":
		return nil, fmt.Errorf("%w: -form and -kind are mutually exclusive", errUsage)
	case formPath != "":
		if len(args) > 0 {
			return nil, fmt.Errorf("%w: unexpected arguments with -form", errUsage)
		}
		f, err := os.Open(formPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return decodeForm(f)
	case kindName != "":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: -kind needs exactly one value argument", errUsage)
		}
		kind, err := validator.ParseKind(kindName)
		if err != nil {
			return nil, err
		}
		if kind.IsCustom() {
			if _, err := validator.CompilePattern(kind.Pattern()); err != nil {
				return nil, err
			}
		}
		return []namedEntry{{
			Name:  "value",
			Entry: validator.FormEntry{Text: args[0], Kind: kind},
		}}, nil
	default:
		return nil, fmt.Errorf("%w: one of -kind or -form is required", errUsage)
	}
}
