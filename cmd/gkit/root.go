package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sailfishos-mirror/glib/array"
	"github.com/sailfishos-mirror/glib/fileutil"
	"github.com/sailfishos-mirror/glib/internal/logger"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	logLevel  string
	logFormat string
)

// stdin is replaced by tests.
var stdin io.Reader = os.Stdin

var rootCmd = &cobra.Command{
	Use:   "gkit",
	Short: "Durable file writes and array-backed text tools",
	Long: `gkit writes files with explicit durability guarantees, creates
temporary files and directories, and sorts or searches line-oriented text
using growable arrays.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Emit structured logs at this level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

func initLogging() error {
	if logLevel == "" {
		logger.Init(logger.Options{})
		return nil
	}
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	format := logger.FormatText
	switch logFormat {
	case "text", "":
	case "json":
		format = logger.FormatJSON
	default:
		return fmt.Errorf("unknown log format %q", logFormat)
	}
	logger.Init(logger.Options{Enabled: true, Level: level, Format: format})
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// parseMode parses an octal permission string such as "0644".
func parseMode(s string) (os.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil || v > 0o7777 {
		return 0, fmt.Errorf("invalid mode %q: want octal permission bits", s)
	}
	mode := os.FileMode(v & 0o777)
	if v&0o4000 != 0 {
		mode |= os.ModeSetuid
	}
	if v&0o2000 != 0 {
		mode |= os.ModeSetgid
	}
	if v&0o1000 != 0 {
		mode |= os.ModeSticky
	}
	return mode, nil
}

// readInput returns the contents of the named file, or stdin when args is
// empty or "-".
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		buf := array.NewByteArray()
		if _, err := io.Copy(buf, stdin); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return buf.FreeToBytes(), nil
	}
	printVerbose("Reading: %s\n", fileutil.DisplayName(args[0]))
	return fileutil.GetContents(args[0])
}

// splitLines breaks data into lines without their terminators. A final
// newline does not produce an empty trailing line.
func splitLines(data []byte) []string {
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
