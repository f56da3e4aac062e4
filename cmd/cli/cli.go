// Package cli wires the analyzer stack for the command layer.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/depscope/depscope/analyzer"
	"github.com/depscope/depscope/config"
	"github.com/depscope/depscope/extract"
	"github.com/depscope/depscope/extract/golang"
	"github.com/depscope/depscope/extract/typescript"
	"github.com/depscope/depscope/fsio"
	"github.com/sirupsen/logrus"
)

// App bundles the analyzer stack a command operates on.
type App struct {
	Analyzer   *analyzer.Analyzer
	Dispatcher *extract.Dispatcher
	Config     analyzer.Config
	Root       string
	Log        *logrus.Logger
}

// NewLogger returns the logger shared by all commands.
func NewLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// NewApp builds the analyzer stack for the project rooted at root.
// Configuration is read from the project's config file when present,
// defaults otherwise.
func NewApp(root string, log *logrus.Logger) (*App, error) {
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project root: %w", err)
	}

	cfg, err := config.LoadFromDir(absRoot)
	if err != nil {
		return nil, err
	}

	dispatcher := extract.NewDispatcher(typescript.New(), golang.New())
	a, err := analyzer.New(cfg, fsio.NewOS(), dispatcher, log)
	if err != nil {
		return nil, err
	}

	return &App{
		Analyzer:   a,
		Dispatcher: dispatcher,
		Config:     cfg,
		Root:       absRoot,
		Log:        log,
	}, nil
}
