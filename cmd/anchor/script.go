package main

import (
	"fmt"

	"github.com/dop251/goja"
	"github.com/inkwell-notes/anchor/internal/debug"
	"github.com/inkwell-notes/anchor/jsbind"
	"github.com/inkwell-notes/anchor/scene"
	"github.com/spf13/cobra"
)

func newScriptCmd() *cobra.Command {
	var scenePath string

	cmd := &cobra.Command{
		Use:   "script FILE.js",
		Short: "Run a placement script against a scene fixture",
		Long: `Run a JavaScript file with document, getPosition, getElementPosition,
dispatchPointer and console available. The value of the last expression is
printed unless it is undefined.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := scene.Load(scenePath)
			if err != nil {
				return err
			}
			bridge, err := jsbind.NewBridge(goja.New(), doc, debug.Logger())
			if err != nil {
				return err
			}
			defer bridge.Close()

			v, err := bridge.RunFile(args[0])
			if err != nil {
				return err
			}
			if v != nil && !goja.IsUndefined(v) {
				fmt.Fprintln(cmd.OutOrStdout(), v.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&scenePath, "scene", "", "HTML scene fixture (required)")
	_ = cmd.MarkFlagRequired("scene")
	return cmd
}
