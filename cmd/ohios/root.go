package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/ohios/internal/config"
	"github.com/joshuapare/ohios/internal/logger"
	"github.com/joshuapare/ohios/kernel"
	"github.com/joshuapare/ohios/shell"
)

var (
	// Global flags
	flags config.Flags

	// Set up by PersistentPreRunE for every subcommand.
	cfg       *config.Config
	logCloser io.Closer
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ohios",
		Short: "A small simulated operating system",
		Long: `ohios simulates OS resource management: a fixed-size address space
shared by processes, a process table and an in-memory hierarchical filesystem,
all driven by a text command language.

Without a subcommand it starts the interactive shell.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				logCloser.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	config.BindFlags(cmd.PersistentFlags(), &flags)
	return cmd
}

// newApp assembles the command tree.
func newApp() *cobra.Command {
	root := newRootCmd()
	root.AddCommand(newShellCmd(), newExecCmd(), newTUICmd(), newVersionCmd())
	return root
}

func execute() {
	if err := newApp().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Resolve(flags.Path)
	if err != nil {
		return err
	}
	if err := flags.Apply(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = c

	closer, err := logger.Init(logger.Options{
		Enabled: cfg.Log.Enabled,
		LogDir:  cfg.Log.Dir,
		Level:   logger.ParseLevel(cfg.Log.Level),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	} else {
		logCloser = closer
	}

	logger.Info("starting ohios",
		"command", cmd.Name(),
		"capacity", cfg.Memory.Capacity,
		"policy", cfg.Memory.Policy,
	)
	return nil
}

// newDispatcher builds a fresh System from cfg.
func newDispatcher() (*shell.Dispatcher, error) {
	sys, err := kernel.New(kernel.Options{
		Capacity: cfg.Memory.Capacity,
		Policy:   cfg.AllocPolicy(),
	})
	if err != nil {
		return nil, err
	}
	return shell.New(sys), nil
}
