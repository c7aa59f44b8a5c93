package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sailfishos-mirror/glib/fileutil"
)

var mktempDir bool

func init() {
	cmd := newMktempCmd()
	cmd.Flags().BoolVarP(&mktempDir, "directory", "d", false, "Create a directory instead of a file")
	rootCmd.AddCommand(cmd)
}

func newMktempCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mktemp [template]",
		Short: "Create a uniquely named file or directory",
		Long: `The mktemp command creates a file (mode 0600) or directory (mode 0700)
and prints its path. The last XXXXXX in the template is replaced with a unique
string. A bare template is created in the system temp directory; a template
containing a path separator is used as given.

Example:
  gkit mktemp
  gkit mktemp build-XXXXXX -d
  gkit mktemp ./out/report-XXXXXX.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMktemp(args)
		},
	}
}

func runMktemp(args []string) error {
	tmpl := ""
	if len(args) == 1 {
		tmpl = args[0]
	}
	explicit := strings.ContainsAny(tmpl, `/\`)

	var path string
	if mktempDir {
		var err error
		if explicit {
			path, err = fileutil.Mkdtemp(tmpl)
		} else {
			path, err = fileutil.DirMakeTmp(tmpl)
		}
		if err != nil {
			return err
		}
	} else {
		open := fileutil.OpenTmp
		if explicit {
			open = fileutil.Mkstemp
		}
		f, err := open(tmpl)
		if err != nil {
			return err
		}
		path = f.Name()
		if err := f.Close(); err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(map[string]any{"path": path, "directory": mktempDir})
	}
	printInfo("%s\n", path)
	return nil
}
