package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sailfishos-mirror/glib/array"
	"github.com/sailfishos-mirror/glib/internal/writer"
)

var (
	sortReverse  bool
	sortKeyField int
	sortOutput   string
)

func init() {
	cmd := newSortCmd()
	cmd.Flags().BoolVarP(&sortReverse, "reverse", "r", false, "Sort in descending order")
	cmd.Flags().IntVarP(&sortKeyField, "key-field", "k", 0, "Sort by this whitespace-separated field (1-based, 0 = whole line)")
	cmd.Flags().StringVarP(&sortOutput, "output", "o", "", "Write the result to this file instead of stdout")
	rootCmd.AddCommand(cmd)
}

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [file]",
		Short: "Stable sort of lines",
		Long: `The sort command sorts lines read from [file] (default stdin). Lines
with equal keys keep their input order.

Example:
  gkit sort names.txt
  gkit sort -k 2 -r scores.txt
  gkit sort -o sorted.txt < names.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(args)
		},
	}
}

// fieldKey returns the n-th whitespace-separated field of line, or the whole
// line when n is 0. Missing fields sort as empty.
func fieldKey(line string, n int) string {
	if n <= 0 {
		return line
	}
	fields := strings.Fields(line)
	if n > len(fields) {
		return ""
	}
	return fields[n-1]
}

func lineCompare(field int, reverse bool) func(a, b string) int {
	return func(a, b string) int {
		c := strings.Compare(fieldKey(a, field), fieldKey(b, field))
		if reverse {
			return -c
		}
		return c
	}
}

func runSort(args []string) error {
	if sortKeyField < 0 {
		return fmt.Errorf("invalid key field %d", sortKeyField)
	}
	data, err := readInput(args)
	if err != nil {
		return err
	}

	lines := array.NewPtrArrayTake(splitLines(data), nil)
	defer lines.Unref()
	lines.Sort(lineCompare(sortKeyField, sortReverse))
	printVerbose("Sorted %d lines\n", lines.Len())

	if jsonOut && sortOutput == "" {
		return printJSON(lines.Data())
	}

	out := array.SizedNewByteArray(len(data) + 1)
	lines.Foreach(func(line string) {
		out.Append([]byte(line)...).Append('\n')
	})

	if sortOutput != "" {
		return writer.NewFileWriter(sortOutput).WriteContents(out.FreeToBytes())
	}
	_, err = os.Stdout.Write(out.FreeToBytes())
	return err
}
