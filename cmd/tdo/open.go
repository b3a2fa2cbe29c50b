package main

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/jdsmith/tdo/internal/cli"
	"github.com/jdsmith/tdo/internal/storage"
	"github.com/jdsmith/tdo/internal/store"
)

// newLogger builds the CLI logger. Adapter warnings always show;
// --verbose adds debug output.
func newLogger() *log.Logger {
	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "tdo",
	})
}

// openStore resolves the data directory and namespace, then loads the
// todo store. Resolution order: flag, $TDO_DIR, ~/.tdoconfig.yaml,
// built-in default.
func openStore() (*store.Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	cfg, err := storage.LoadConfig(home)
	if err != nil {
		return nil, err
	}

	dir := cfg.DataDir
	if env := os.Getenv("TDO_DIR"); env != "" {
		dir = env
	}
	if flagDir != "" {
		dir = flagDir
	}

	namespace := cfg.Namespace
	if flagNamespace != "" {
		namespace = flagNamespace
	}

	adapter := storage.NewFileStore(dir, namespace, newLogger())
	return store.New(adapter), nil
}

// parseID parses a numeric todo ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, &cli.ValidationError{Field: "id", Message: arg + " is not a positive number"}
	}
	return id, nil
}
