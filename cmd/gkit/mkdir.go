package main

import (
	"github.com/spf13/cobra"

	"github.com/sailfishos-mirror/glib/fileutil"
)

var mkdirMode string

func init() {
	cmd := newMkdirCmd()
	cmd.Flags().StringVar(&mkdirMode, "mode", "0755", "Permission bits for created directories (octal)")
	rootCmd.AddCommand(cmd)
}

func newMkdirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory and any missing parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMkdir(args)
		},
	}
}

func runMkdir(args []string) error {
	mode, err := parseMode(mkdirMode)
	if err != nil {
		return err
	}
	if err := fileutil.MkdirWithParents(args[0], mode); err != nil {
		return err
	}
	printVerbose("Created %s\n", fileutil.DisplayName(args[0]))
	return nil
}
