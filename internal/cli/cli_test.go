package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/config"
	"github.com/matzehuels/drawset/pkg/errors"
	drawio "github.com/matzehuels/drawset/pkg/io"
	"github.com/matzehuels/drawset/pkg/object"
	"github.com/matzehuels/drawset/pkg/observability"
	"github.com/matzehuels/drawset/pkg/texttree"
)

const testDocument = `drawing:
  - object:
      label: first
      width: "40"
      height: "30"
  - object:
      width: "20"
      height: "20"
      fill: "#00ff00"
`

// captureOutput redirects command output for the duration of the test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldErr := stdout, stderr
	stdout, stderr = &buf, io.Discard
	t.Cleanup(func() { stdout, stderr = oldOut, oldErr })
	return &buf
}

// isolate points the XDG directories at temporary ones.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Cleanup(observability.Reset)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolate(t)
	out := captureOutput(t)
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func readObjects(t *testing.T, path string) []object.Object {
	t.Helper()
	objects, err := drawio.ReadFile(path)
	require.NoError(t, err)
	return objects
}

// =============================================================================
// Helpers
// =============================================================================

func TestParseSelection(t *testing.T) {
	objects := make([]object.Object, 4)
	for i := range objects {
		objects[i] = object.New()
	}
	objects[1].Flags = object.FlagsNone

	tests := []struct {
		expr string
		want []int
	}{
		{"", []int{0, 1, 2, 3}},
		{"all", []int{0, 1, 2, 3}},
		{"selected", []int{0, 2, 3}},
		{"2", []int{2}},
		{"0, 2", []int{0, 2}},
		{"1-3", []int{1, 2, 3}},
		{"0,5-6", []int{0, 5, 6}},
	}
	for _, tt := range tests {
		got, err := parseSelection(tt.expr, objects)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, got, tt.expr)
	}

	for _, bad := range []string{"x", "3-1", "1-", "-2"} {
		_, err := parseSelection(bad, objects)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidArgument), bad)
	}
}

func TestLookupKind(t *testing.T) {
	k, err := lookupKind("font_size")
	require.NoError(t, err)
	assert.Equal(t, attr.FontSize, k)

	_, err = lookupKind("colour")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "font_size")
}

func TestDocumentFormat(t *testing.T) {
	f, err := documentFormat("a.yml", "")
	require.NoError(t, err)
	assert.Equal(t, texttree.FormatYAML, f)

	f, err = documentFormat("a.txt", "json")
	require.NoError(t, err)
	assert.Equal(t, texttree.FormatJSON, f)

	_, err = documentFormat("a.txt", "")
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "dir/doc.svg", outputPath("dir/doc.yaml", "", ".svg"))
	assert.Equal(t, "out.svg", outputPath("dir/doc.yaml", "out.svg", ".svg"))
}

func TestCanvasFlagsApply(t *testing.T) {
	flags := canvasFlags{width: 300, flow: "column"}
	cfg, err := flags.apply(config.Default())
	require.NoError(t, err)
	assert.Equal(t, float32(300), cfg.Canvas.Width)
	assert.Equal(t, "column", cfg.Canvas.Flow)
	assert.Equal(t, float32(16), cfg.Canvas.Padding)

	flags = canvasFlags{flow: "spiral"}
	_, err = flags.apply(config.Default())
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	isolate(t)

	c := New(io.Discard, LogInfo)
	require.NoError(t, c.loadConfig(), "missing default config is fine")
	assert.Equal(t, config.Default(), c.Config)

	c.configPath = filepath.Join(t.TempDir(), "missing.toml")
	err := c.loadConfig()
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	c.configPath = writeFile(t, "drawset.toml", "[canvas]\nwidth = 123\n[log]\nlevel = \"warn\"\n")
	require.NoError(t, c.loadConfig())
	assert.Equal(t, float32(123), c.Config.Canvas.Width)
	assert.Equal(t, log.WarnLevel, c.Logger.GetLevel())
}

// =============================================================================
// Commands
// =============================================================================

func TestRenderCommand(t *testing.T) {
	doc := writeFile(t, "doc.yaml", testDocument)

	out, err := execute(t, "render", doc, "--no-cache")
	require.NoError(t, err)
	assert.Contains(t, out, "Rendered")

	svg, err := os.ReadFile(strings.TrimSuffix(doc, ".yaml") + ".svg")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(svg, []byte("<svg")))
	assert.Contains(t, string(svg), `fill="#00ff00"`)
}

func TestRenderCommandStdout(t *testing.T) {
	doc := writeFile(t, "doc.yaml", testDocument)

	out, err := execute(t, "render", doc, "-o", "-", "--width", "100")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<svg"))
}

func TestRenderCommandErrors(t *testing.T) {
	_, err := execute(t, "render", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	doc := writeFile(t, "doc.yaml", testDocument)
	_, err = execute(t, "render", doc, "--flow", "spiral")
	assert.Error(t, err)
}

func TestArrangeCommand(t *testing.T) {
	doc := writeFile(t, "doc.yaml", testDocument)

	out, err := execute(t, "arrange", doc, "--padding", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Label")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "row flow")
}

func TestGetCommand(t *testing.T) {
	doc := writeFile(t, "doc.yaml", testDocument)

	out, err := execute(t, "get", doc, "width", "--select", "0")
	require.NoError(t, err)
	assert.Equal(t, "40\n", out)

	out, err = execute(t, "get", doc, "width")
	require.NoError(t, err)
	assert.Equal(t, mixedValue+"\n", out)

	out, err = execute(t, "get", doc, "shape")
	require.NoError(t, err)
	assert.Equal(t, "rect\n", out, "unset slots read as the default")

	_, err = execute(t, "get", doc, "colour")
	assert.Error(t, err)
}

func TestSetCommand(t *testing.T) {
	doc := writeFile(t, "doc.yaml", testDocument)

	_, err := execute(t, "set", doc, "fill", "#ff0000", "--select", "0")
	require.NoError(t, err)

	objects := readObjects(t, doc)
	require.Len(t, objects, 2)
	fill, err := objects[0].Uint32(attr.Fill)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFF0000), fill)
	fill, err = objects[1].Uint32(attr.Fill)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFF00FF00), fill)

	// An empty value resets the slot.
	_, err = execute(t, "set", doc, "fill", "")
	require.NoError(t, err)
	for _, o := range readObjects(t, doc) {
		v, _ := o.Value(attr.Fill)
		assert.False(t, v.IsSet())
	}
}

func TestSetCommandReportsBadValues(t *testing.T) {
	doc := writeFile(t, "doc.yaml", testDocument)
	out := filepath.Join(t.TempDir(), "out.json")

	_, err := execute(t, "set", doc, "width", "wide", "-o", out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))

	objects := readObjects(t, out)
	require.Len(t, objects, 2)
	v, _ := objects[0].Value(attr.Width)
	assert.False(t, v.IsSet(), "a failed parse resets the slot")
}

func TestMergeCommand(t *testing.T) {
	doc := writeFile(t, "doc.yaml", testDocument)
	overrides := writeFile(t, "over.yaml", "drawing:\n  object:\n    rotation: \"45\"\n")

	_, err := execute(t, "merge", doc, overrides, "--select", "1")
	require.NoError(t, err)

	objects := readObjects(t, doc)
	v, _ := objects[0].Value(attr.Rotation)
	assert.False(t, v.IsSet())
	rot, err := objects[1].Float32(attr.Rotation)
	require.NoError(t, err)
	assert.Equal(t, float32(45), rot)

	empty := writeFile(t, "empty.yaml", "drawing: {}\n")
	_, err = execute(t, "merge", doc, empty)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestConvertCommand(t *testing.T) {
	doc := writeFile(t, "doc.yaml", testDocument)
	dir := t.TempDir()

	for _, ext := range []string{".json", ".toml", ".msgpack"} {
		out := filepath.Join(dir, "doc"+ext)
		_, err := execute(t, "convert", doc, out)
		require.NoError(t, err, ext)

		objects := readObjects(t, out)
		require.Len(t, objects, 2, ext)
		assert.Equal(t, "first", objects[0].Label, ext)
	}
}

func TestCachePathCommand(t *testing.T) {
	out, err := execute(t, "cache", "path")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), appName))
}

func TestCacheClearCommand(t *testing.T) {
	doc := writeFile(t, "doc.yaml", testDocument)
	isolate(t)
	captureOutput(t)

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", doc})
	require.NoError(t, root.ExecuteContext(context.Background()))

	dir, err := cacheDir()
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)

	root = c.RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	require.NoError(t, root.ExecuteContext(context.Background()))
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// =============================================================================
// Editor
// =============================================================================

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m EditorModel, keys ...string) (EditorModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(EditorModel)
	}
	return m, cmd
}

func newTestEditor(t *testing.T, n int) (EditorModel, *[]object.Object) {
	t.Helper()
	objects := make([]object.Object, n)
	for i := range objects {
		objects[i] = object.New()
	}
	var saved []object.Object
	m := NewEditorModel(objects, func(objs []object.Object) error {
		saved = objs
		return nil
	})
	return m, &saved
}

func TestEditorSelection(t *testing.T) {
	m, _ := newTestEditor(t, 3)
	assert.Len(t, object.Selected(m.Objects), 3, "new objects start selected")

	m, _ = press(t, m, "n")
	assert.Empty(t, object.Selected(m.Objects))

	m, _ = press(t, m, "enter")
	assert.False(t, m.Editing)
	assert.Equal(t, "nothing selected", m.Status)

	m, _ = press(t, m, "down", " ", "down", " ")
	assert.Equal(t, []int{1, 2}, object.Selected(m.Objects))
	assert.Equal(t, 2, m.Cursor)

	m, _ = press(t, m, "down")
	assert.Equal(t, 2, m.Cursor, "cursor stops at the last object")

	m, _ = press(t, m, "a")
	assert.Len(t, object.Selected(m.Objects), 3)
}

func TestEditorAttributeCycle(t *testing.T) {
	m, _ := newTestEditor(t, 1)
	assert.Equal(t, attr.Shape, m.Kind)

	m, _ = press(t, m, "right")
	assert.Equal(t, attr.Text, m.Kind)

	m, _ = press(t, m, "left", "left")
	assert.Equal(t, attr.Visibility, m.Kind)

	m, _ = press(t, m, "left")
	assert.Equal(t, attr.Kind(attr.Total-1), m.Kind, "wraps around")
}

func TestEditorEditSelection(t *testing.T) {
	m, saved := newTestEditor(t, 3)
	m, _ = press(t, m, "n", " ", "down", "down", " ", "right")
	require.Equal(t, []int{0, 2}, object.Selected(m.Objects))

	m, _ = press(t, m, "enter")
	require.True(t, m.Editing)
	assert.Equal(t, "", m.Input)

	m, _ = press(t, m, "h", "e", "y", "backspace", "i", " ", "x", "enter")
	assert.False(t, m.Editing)
	assert.True(t, m.Dirty)
	assert.Equal(t, "set text on 2 objects", m.Status)

	assert.Equal(t, "hei x", object.GetStringValue(m.Objects, []int{0, 2}, attr.Text, mixedValue))
	assert.Equal(t, mixedValue, object.GetStringValue(m.Objects, object.All(m.Objects), attr.Text, mixedValue))

	m, _ = press(t, m, "w")
	assert.False(t, m.Dirty)
	assert.Equal(t, "saved", m.Status)
	assert.Len(t, *saved, 3)

	m, _ = press(t, m, "r")
	v, _ := m.Objects[0].Value(attr.Text)
	assert.False(t, v.IsSet(), "r resets the attribute")
}

func TestEditorEditCancel(t *testing.T) {
	m, _ := newTestEditor(t, 1)
	m, _ = press(t, m, "enter", "c", "i", "r", "c", "l", "e", "esc")
	assert.False(t, m.Editing)
	assert.False(t, m.Dirty)
	assert.Equal(t, "rect", object.GetStringValue(m.Objects, []int{0}, attr.Shape, mixedValue))
}

func TestEditorInvalidValue(t *testing.T) {
	m, _ := newTestEditor(t, 2)
	for m.Kind != attr.FontSize {
		m, _ = press(t, m, "right")
	}
	m, _ = press(t, m, "enter", "b", "i", "g", "enter")
	assert.True(t, strings.HasPrefix(m.Status, "error"), m.Status)
	for i := range m.Objects {
		assert.NotNil(t, m.Objects[i].Drawable(), "the selection is flushed even when a value is rejected")
	}
	assert.Contains(t, m.View(), m.Status)
}

func TestEditorDuplicateRemove(t *testing.T) {
	m, _ := newTestEditor(t, 2)
	m, _ = press(t, m, "n", " ", "d")
	assert.Len(t, m.Objects, 3)
	assert.True(t, m.Dirty)

	m, _ = press(t, m, "a", "x")
	assert.Empty(t, m.Objects)
	assert.Equal(t, 0, m.Cursor)
	assert.NotPanics(t, func() { _ = m.View() })
}

func TestEditorQuit(t *testing.T) {
	m, _ := newTestEditor(t, 1)
	_, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestEditorView(t *testing.T) {
	m, _ := newTestEditor(t, 2)
	m.Objects[0].Label = "alpha"
	view := m.View()
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "shape [2 selected]:")
	assert.Contains(t, view, "rect")
}
