package main

import (
	"github.com/inkwell-notes/anchor/internal/debug"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logPath string

	root := &cobra.Command{
		Use:           "anchor",
		Short:         "Place menus, tooltips and popovers next to a pointer or element",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Init(logPath)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}
	root.PersistentFlags().StringVar(&logPath, "log", "", "append debug logs to this file (default $"+debug.EnvVar+")")

	root.AddCommand(
		newPlaceCmd(),
		newScriptCmd(),
		newTrackCmd(),
		newDemoCmd(),
	)
	return root
}
