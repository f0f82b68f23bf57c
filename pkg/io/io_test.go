package io

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/object"
	"github.com/matzehuels/drawset/pkg/texttree"
)

func sampleDocument() *texttree.Node {
	root := texttree.NewNode(RootName)
	a := root.Add(ObjectName)
	a.AddValue(LabelName, "Title")
	a.AddValue("shape", "text")
	a.AddValue("text", "Hello")
	a.AddValue("font_size", "24")
	b := root.Add(ObjectName)
	b.AddValue("fill", "0xFFFF0000")
	b.AddValue("visibility", "false")
	b.AddValue("from_the_future", "ignored")
	root.Add(ObjectName)
	return root
}

func TestLoad(t *testing.T) {
	var objs []object.Object
	require.NoError(t, Load(sampleDocument(), &objs))
	require.Len(t, objs, 3)

	assert.Equal(t, "Title", objs[0].Label)
	size, err := objs[0].Float32(attr.FontSize)
	require.NoError(t, err)
	assert.Equal(t, float32(24), size)

	fill, err := objs[1].Uint32(attr.Fill)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFF0000), fill)
	assert.False(t, objs[1].IsVisible())

	v := objs[2].Values()
	assert.Zero(t, v.SetCount(), "empty object node")
}

func TestLoadAppends(t *testing.T) {
	objs := []object.Object{object.New()}
	require.NoError(t, Load(sampleDocument(), &objs))
	assert.Len(t, objs, 4)
}

func TestLoadReportsBadValues(t *testing.T) {
	root := texttree.NewNode(RootName)
	obj := root.Add(ObjectName)
	obj.AddValue("font_size", "huge")
	obj.AddValue("text", "still loaded")

	var objs []object.Object
	err := Load(root, &objs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
	require.Len(t, objs, 1)

	v, _ := objs[0].Value(attr.FontSize)
	assert.False(t, v.IsSet(), "bad value leaves the slot at its default")
	text, _ := objs[0].String(attr.Text)
	assert.Equal(t, "still loaded", text)

	assert.True(t, errors.Is(Load(nil, &objs), errors.ErrCodeInvalidInput))
}

func TestStoreOmitsUnsetSlots(t *testing.T) {
	o := object.New()
	require.NoError(t, o.SetFloat32(attr.Width, 120))
	require.NoError(t, o.SetString(attr.Shape, "ellipse"))
	o.Label = "E"
	o.Update()

	root := Document([]object.Object{o, object.New()})
	require.Len(t, root.Children, 2)

	first := root.Children[0]
	names := make([]string, len(first.Children))
	for i, c := range first.Children {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"label", "shape", "width"}, names, "label first, then kind order")
	assert.Equal(t, "120", first.Child("width").Value)
	assert.True(t, root.Children[1].Leaf())
}

func TestStoreLoadRoundTrip(t *testing.T) {
	var objs []object.Object
	require.NoError(t, Load(sampleDocument(), &objs))

	stored := Document(objs)
	var again []object.Object
	require.NoError(t, Load(stored, &again))

	require.Len(t, again, len(objs))
	for i := range objs {
		assert.Equal(t, objs[i].Values(), again[i].Values(), "object %d", i)
		assert.Equal(t, objs[i].Label, again[i].Label)
	}
	assert.Equal(t, stored, Document(again), "storing twice is stable")
}

func TestRoundTripPreservesText(t *testing.T) {
	root := texttree.NewNode(RootName)
	a := root.Add(ObjectName)
	a.AddValue("text", "  indented ")
	a.AddValue("font_family", " Serif")
	a.AddValue("fill", "#FF0000")
	a.AddValue("font_size", " 12 ")

	var objs []object.Object
	require.NoError(t, Load(root, &objs))
	require.Len(t, objs, 1)

	b := object.New()
	require.NoError(t, b.SetString(attr.Text, " x "))
	objs = append(objs, b)

	stored := Document(objs)
	first := stored.Children[0]
	assert.Equal(t, "  indented ", first.Child("text").Value)
	assert.Equal(t, " Serif", first.Child("font_family").Value)
	assert.Equal(t, "0xFFFF0000", first.Child("fill").Value, "colors are stored normalized")
	assert.Equal(t, "12", first.Child("font_size").Value)
	assert.Equal(t, " x ", stored.Children[1].Child("text").Value)

	var again []object.Object
	require.NoError(t, Load(stored, &again))
	require.Len(t, again, 2)
	for i := range objs {
		assert.Equal(t, objs[i].Values(), again[i].Values(), "object %d", i)
	}
	assert.Equal(t, stored, Document(again))

	dir := t.TempDir()
	for _, ext := range []string{".yaml", ".json", ".toml", ".msgpack"} {
		path := filepath.Join(dir, "text"+ext)
		require.NoError(t, WriteFile(path, objs), ext)
		got, err := ReadFile(path)
		require.NoError(t, err, ext)
		require.Len(t, got, 2, ext)
		s, _ := got[0].String(attr.Text)
		assert.Equal(t, "  indented ", s, ext)
		s, _ = got[1].String(attr.Text)
		assert.Equal(t, " x ", s, ext)
	}
}

func TestFileRoundTrip(t *testing.T) {
	var objs []object.Object
	require.NoError(t, Load(sampleDocument(), &objs))

	dir := t.TempDir()
	for _, ext := range []string{".yaml", ".json", ".toml", ".msgpack"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "drawing"+ext)
			require.NoError(t, WriteFile(path, objs))

			got, err := ReadFile(path)
			require.NoError(t, err)
			require.Len(t, got, len(objs))
			for i := range objs {
				assert.Equal(t, objs[i].Values(), got[i].Values(), "object %d", i)
			}
		})
	}
}

func TestReadWrite(t *testing.T) {
	var buf bytes.Buffer
	objs := []object.Object{object.New()}
	require.NoError(t, objs[0].SetText(attr.Color, "#00ff00"))
	require.NoError(t, Write(&buf, texttree.FormatJSON, objs))

	got, err := Read(&buf, texttree.FormatJSON)
	require.NoError(t, err)
	require.Len(t, got, 1)
	c, _ := got[0].Uint32(attr.Color)
	assert.Equal(t, uint32(0xFF00FF00), c)
}

func TestReadFileErrors(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	_, err = ReadFile(path)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}
