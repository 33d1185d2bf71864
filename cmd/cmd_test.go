package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, returning stdout and
// stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeBookDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"book.toml":          "[book]\ntitle = \"Handbook\"\nsrc = \"src\"\n",
		"src/guide_intro.md": "# Intro\n",
		"src/ref_api.md":     "# API\n",
		"src/01.start.md":    "# Start\n",
	}
	for rel, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
	return dir
}

func TestRootCmd_Preprocess(t *testing.T) {
	dir := writeBookDir(t)
	input := fmt.Sprintf(`[{"root": %q, "config": {"book": {"src": "src"}}, "renderer": "html", "mdbook_version": "0.4.40"},
		{"sections": [], "__non_exhaustive": null}]`, dir)

	stdout, stderr, err := execute(t, input)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	var book struct {
		Sections []json.RawMessage `json:"sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &book))
	// start.md, then the guide and ref groups.
	require.Len(t, book.Sections, 7)
	assert.Contains(t, string(book.Sections[0]), `"name":"start.md"`)
	assert.JSONEq(t, `"Separator"`, string(book.Sections[1]))
	assert.JSONEq(t, `{"PartTitle": "guide"}`, string(book.Sections[2]))
	assert.Contains(t, string(book.Sections[3]), `"number":[3]`)
}

func TestRootCmd_PreprocessInvalidInput(t *testing.T) {
	stdout, _, err := execute(t, "[]")

	require.Error(t, err)
	assert.Empty(t, stdout)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "", "unexpected")

	assert.Error(t, err)
}

func TestSupportsCmd(t *testing.T) {
	tests := []struct {
		renderer  string
		supported bool
	}{
		{"html", true},
		{"pdf", true},
		{"not-supported", false},
	}

	for _, tt := range tests {
		t.Run(tt.renderer, func(t *testing.T) {
			stdout, _, err := execute(t, "", "supports", tt.renderer)
			assert.Empty(t, stdout)
			if tt.supported {
				assert.NoError(t, err)
				return
			}
			var exit *exitError
			require.True(t, errors.As(err, &exit))
			assert.Equal(t, 1, exit.code)
		})
	}
}

func TestSupportsCmd_RequiresRenderer(t *testing.T) {
	_, _, err := execute(t, "", "supports")

	assert.Error(t, err)
}

func TestOutlineCmd_JSON(t *testing.T) {
	dir := writeBookDir(t)

	stdout, _, err := execute(t, "", "outline", dir, "--format", "json")
	require.NoError(t, err)

	var sections []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(stdout), &sections))
	assert.Len(t, sections, 7)
}

func TestOutlineCmd_Tree(t *testing.T) {
	dir := writeBookDir(t)

	stdout, _, err := execute(t, "", "outline", dir, "--format", "tree")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Handbook")
	assert.Contains(t, stdout, "guide_intro.md")
	assert.Contains(t, stdout, "Chapters:")
}

func TestOutlineCmd_InvalidFormat(t *testing.T) {
	_, _, err := execute(t, "", "outline", t.TempDir(), "--format", "xml")

	assert.ErrorContains(t, err, "unknown format")
}

func TestOutlineCmd_MissingSource(t *testing.T) {
	_, _, err := execute(t, "", "outline", t.TempDir(), "--format", "tree")

	assert.ErrorContains(t, err, "failed to read directory")
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := execute(t, "", "--version")
	require.NoError(t, err)

	assert.Contains(t, stdout, "summary-generate dev")
}
