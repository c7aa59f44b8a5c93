package main

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailfishos-mirror/glib/fileutil"
)

func TestWriteCommand(t *testing.T) {
	resetFlags()
	path := filepath.Join(t.TempDir(), "app.conf")
	withStdin(t, "key=value\n")

	out, err := captureOutput(t, func() error { return runWrite([]string{path}) })
	require.NoError(t, err)
	assert.Equal(t, "Wrote 10 bytes to "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "key=value\n", string(data))
}

func TestWriteCommand_FromFileAsJSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	writeDurable = true
	dir := t.TempDir()
	src := filepath.Join(dir, "staged")
	dst := filepath.Join(dir, "live")
	require.NoError(t, os.WriteFile(src, []byte("v2"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("v1"), 0o644))

	out, err := captureOutput(t, func() error { return runWrite([]string{dst, src}) })
	require.NoError(t, err)

	var res writeResult
	decodeJSON(t, out, &res)
	assert.Equal(t, writeResult{Path: dst, Bytes: 2, Flags: "consistent|durable|only-existing"}, res)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestWriteCommand_DryRun(t *testing.T) {
	resetFlags()
	writeDryRun = true
	path := filepath.Join(t.TempDir(), "never")
	withStdin(t, "abc")

	out, err := captureOutput(t, func() error { return runWrite([]string{path}) })
	require.NoError(t, err)
	assert.Contains(t, out, "Would write 3 bytes")
	assert.NoFileExists(t, path)
}

func TestWriteCommand_Errors(t *testing.T) {
	resetFlags()
	withStdin(t, "x")

	writeMode = "rw-r--r--"
	_, err := captureOutput(t, func() error { return runWrite([]string{filepath.Join(t.TempDir(), "f")}) })
	require.ErrorContains(t, err, "invalid mode")

	writeMode = "0644"
	missing := filepath.Join(t.TempDir(), "no", "dir", "f")
	_, err = captureOutput(t, func() error { return runWrite([]string{missing}) })
	require.Error(t, err)
	assert.ErrorIs(t, err, fileutil.CodeNoEnt)
}

func TestCatCommand(t *testing.T) {
	resetFlags()
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, fileutil.SetContents(path, []byte("one\ntwo\n")))

	out, err := captureOutput(t, func() error { return runCat([]string{path}) })
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", out)

	_, err = captureOutput(t, func() error { return runCat([]string{path + ".missing"}) })
	assert.ErrorIs(t, err, fileutil.CodeNoEnt)
}

func TestMktempCommand(t *testing.T) {
	resetFlags()
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)
	t.Setenv("TMP", tmp)

	out, err := captureOutput(t, func() error { return runMktemp(nil) })
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, os.TempDir(), filepath.Dir(path))
	assert.FileExists(t, path)

	mktempDir = true
	out, err = captureOutput(t, func() error { return runMktemp([]string{"work-XXXXXX"}) })
	require.NoError(t, err)
	assert.DirExists(t, strings.TrimSpace(out))
}

func TestMktempCommand_ExplicitTemplate(t *testing.T) {
	resetFlags()
	dir := t.TempDir()

	out, err := captureOutput(t, func() error {
		return runMktemp([]string{filepath.Join(dir, "report-XXXXXX.csv")})
	})
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".csv"))

	_, err = captureOutput(t, func() error { return runMktemp([]string{"no-placeholder"}) })
	assert.ErrorIs(t, err, fileutil.CodeFailed)
}

func TestMkdirCommand(t *testing.T) {
	resetFlags()
	path := filepath.Join(t.TempDir(), "a", "b")

	_, err := captureOutput(t, func() error { return runMkdir([]string{path}) })
	require.NoError(t, err)
	assert.DirExists(t, path)

	if runtime.GOOS != "windows" {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		_, err = captureOutput(t, func() error { return runMkdir([]string{filepath.Join(file, "sub")}) })
		assert.ErrorIs(t, err, fileutil.CodeNotDir)
	}
}

func TestSortCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		field   int
		reverse bool
		want    string
	}{
		{"whole line", "pear\napple\nfig\n", 0, false, "apple\nfig\npear\n"},
		{"reverse", "pear\napple\nfig", 0, true, "pear\nfig\napple\n"},
		{"stable by field", "b 2\na 1\nc 2\nd 1\n", 2, false, "a 1\nd 1\nb 2\nc 2\n"},
		{"stable by field reversed", "b 2\na 1\nc 2\nd 1\n", 2, true, "b 2\nc 2\na 1\nd 1\n"},
		{"missing field sorts first", "x 9\ny\n", 2, false, "y\nx 9\n"},
		{"crlf input", "b\r\na\r\n", 0, false, "a\nb\n"},
		{"empty", "", 0, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			sortKeyField = tt.field
			sortReverse = tt.reverse
			withStdin(t, tt.input)

			out, err := captureOutput(t, func() error { return runSort(nil) })
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSortCommand_OutputFile(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	src := filepath.Join(dir, "in")
	dst := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(src, []byte("3\n1\n2\n"), 0o644))
	sortOutput = dst

	out, err := captureOutput(t, func() error { return runSort([]string{src}) })
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", string(data))
}

func TestSortCommand_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	withStdin(t, "b\na\n")

	out, err := captureOutput(t, func() error { return runSort(nil) })
	require.NoError(t, err)
	var lines []string
	decodeJSON(t, out, &lines)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		needle  string
		field   int
		sort    bool
		want    string
		wantErr bool
	}{
		{"first of duplicates", "a\nb\nb\nb\nc\n", "b", 0, false, "1\n", false},
		{"first line", "a\nb\n", "a", 0, false, "0\n", false},
		{"not found", "a\nc\n", "b", 0, false, "", true},
		{"sort first", "c\na\nb\n", "c", 0, true, "2\n", false},
		{"by field", "x 1\ny 2\nz 2\n", "2", 2, false, "1\n", false},
		{"empty input", "", "a", 0, false, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			searchKeyField = tt.field
			searchSort = tt.sort
			withStdin(t, tt.input)

			out, err := captureOutput(t, func() error { return runSearch([]string{tt.needle}) })
			if tt.wantErr {
				require.ErrorContains(t, err, "not found")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSearchCommand_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	withStdin(t, "alpha\nbeta\n")

	out, err := captureOutput(t, func() error { return runSearch([]string{"beta"}) })
	require.NoError(t, err)
	var res searchResult
	decodeJSON(t, out, &res)
	assert.Equal(t, searchResult{Needle: "beta", Found: true, Index: 1, Line: "beta"}, res)

	out, err = captureOutput(t, func() error { return runSearch([]string{"gamma"}) })
	require.NoError(t, err)
	decodeJSON(t, out, &res)
	assert.False(t, res.Found)
	assert.Equal(t, -1, res.Index)
}
