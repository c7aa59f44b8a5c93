package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sailfishos-mirror/glib/array"
)

var (
	searchSort     bool
	searchKeyField int
)

func init() {
	cmd := newSearchCmd()
	cmd.Flags().BoolVar(&searchSort, "sort", false, "Sort the input before searching")
	cmd.Flags().IntVarP(&searchKeyField, "key-field", "k", 0, "Match this whitespace-separated field (1-based, 0 = whole line)")
	rootCmd.AddCommand(cmd)
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <needle> [file]",
		Short: "Binary search sorted lines",
		Long: `The search command binary searches lines read from [file] (default
stdin) and prints the 0-based index of the first line equal to <needle>.
Input must already be sorted unless --sort is given; unsorted input gives an
unspecified answer.

Example:
  gkit search carol names.txt
  gkit sort -k 1 users.txt | gkit search -k 1 1001`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args)
		},
	}
}

type searchResult struct {
	Needle string `json:"needle"`
	Found  bool   `json:"found"`
	Index  int    `json:"index"`
	Line   string `json:"line,omitempty"`
}

func runSearch(args []string) error {
	needle := args[0]
	if searchKeyField < 0 {
		return fmt.Errorf("invalid key field %d", searchKeyField)
	}
	data, err := readInput(args[1:])
	if err != nil {
		return err
	}

	lines := array.NewTake(splitLines(data), false)
	defer lines.Unref()
	if searchSort {
		lines.Sort(lineCompare(searchKeyField, false))
	}

	idx, found := lines.BinarySearch(needle, func(line, target string) int {
		return strings.Compare(fieldKey(line, searchKeyField), target)
	})
	res := searchResult{Needle: needle, Found: found, Index: idx}
	if found {
		res.Line = lines.Index(idx)
	}

	if jsonOut {
		return printJSON(res)
	}
	if !found {
		return fmt.Errorf("%q not found", needle)
	}
	printVerbose("%d: %s\n", idx, res.Line)
	if !verbose {
		printInfo("%d\n", idx)
	}
	return nil
}
