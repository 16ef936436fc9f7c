package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/outreg/internal/config"
	"github.com/dshills/outreg/internal/register"
	"github.com/dshills/outreg/internal/store"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// Exit codes.
const (
	exitIncomplete = 2
	exitInput      = 3
	exitStore      = 4
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	dbPath     string
	verbose    bool
}

// app bundles what a command needs once configuration is loaded.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store
	svc    *register.Service
	stdout io.Writer
}

// newApp loads configuration and builds the logger. The store is opened
// lazily by openStore so draft-only commands never touch the database.
func newApp(g globalFlags, stdout io.Writer) (*app, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, codeError(exitInput, "loading config: %s", err)
	}
	if g.dbPath != "" {
		cfg.Store.Path = g.dbPath
	}
	logger, err := config.NewLogger(cfg.Log, g.verbose)
	if err != nil {
		return nil, codeError(exitInput, "%s", err)
	}
	a := &app{cfg: cfg, logger: logger, stdout: stdout}
	a.svc = register.NewService(nil, logger)
	return a, nil
}

func (a *app) openStore() error {
	if a.store != nil {
		return nil
	}
	a.logger.Debug("opening store", zap.String("path", a.cfg.Store.Path))
	st, err := store.Open(a.cfg.Store.Path)
	if err != nil {
		return codeError(exitStore, "opening store: %s", err)
	}
	a.store = st
	a.svc = register.NewService(st, a.logger)
	return nil
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("closing store", zap.Error(err))
		}
		a.store = nil
	}
	_ = a.logger.Sync()
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var g globalFlags
	root := &cobra.Command{
		Use:     "outreg",
		Short:   "Maintain an outsourcing register",
		Long:    "outreg keeps the register of outsourcing arrangements required by the EBA Guidelines on outsourcing and checks every record against the mandatory fields of points 54, 54.h and 55.",
		Version: version,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "Config file (yaml, json or toml)")
	pf.StringVar(&g.dbPath, "db", "", "Register database path (overrides store.path)")
	pf.BoolVar(&g.verbose, "verbose", false, "Log processing steps to stderr")

	// withApp runs fn with a fresh app and closes it afterwards.
	withApp := func(fn func(a *app, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := newApp(g, stdout)
			if err != nil {
				return err
			}
			defer a.close()
			return fn(a, args)
		}
	}

	root.AddCommand(
		newNewCmd(withApp),
		newCheckCmd(withApp),
		newPendingCmd(withApp),
		newFieldsCmd(withApp),
		newSaveCmd(withApp),
		newListCmd(withApp),
		newShowCmd(withApp),
		newDiffCmd(withApp),
		newDeleteCmd(withApp),
		newExportCmd(withApp),
		newImportCmd(withApp),
		newNextRefCmd(withApp),
	)
	return root
}

type runner func(fn func(a *app, args []string) error) func(*cobra.Command, []string) error

// writeOutput writes data to path, or to stdout when path is empty.
func (a *app) writeOutput(path string, data []byte) error {
	if path != "" {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return codeError(exitInput, "writing output file: %s", err)
		}
		return nil
	}
	if _, err := a.stdout.Write(data); err != nil {
		return codeError(exitInput, "writing output: %s", err)
	}
	// Ensure output ends with a newline for terminal friendliness.
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(a.stdout)
	}
	return nil
}

// registerError maps service errors to exit codes.
func registerError(op string, err error) error {
	var ie *register.IncompleteError
	switch {
	case errors.As(err, &ie):
		return codeError(exitIncomplete, "%s: %s", op, err)
	case errors.Is(err, register.ErrNotFound),
		errors.Is(err, register.ErrDuplicateReference),
		errors.Is(err, register.ErrInvalidReference),
		errors.Is(err, register.ErrInvalidRecord):
		return codeError(exitInput, "%s: %s", op, err)
	default:
		return codeError(exitStore, "%s: %s", op, err)
	}
}
