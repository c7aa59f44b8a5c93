package main

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCatCmd())
}

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file's contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(args)
		},
	}
}

func runCat(args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
