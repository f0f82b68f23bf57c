package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/geom"
)

func TestBatchSet(t *testing.T) {
	objs := newObjects(3)

	require.NoError(t, Set(objs, []int{0, 2}, attr.Fill, "#ff0000"))
	for _, i := range []int{0, 2} {
		v, _ := objs[i].Value(attr.Fill)
		assert.Equal(t, attr.Uint32(0xFFFF0000), v, "object %d", i)
	}
	v, _ := objs[1].Value(attr.Fill)
	assert.False(t, v.IsSet(), "unselected object is untouched")

	require.NoError(t, Set(objs, []int{0}, attr.Fill, ""))
	v, _ = objs[0].Value(attr.Fill)
	assert.False(t, v.IsSet(), "empty text resets the slot")
}

func TestBatchSetErrors(t *testing.T) {
	objs := newObjects(2)
	require.NoError(t, objs[1].SetFloat32(attr.FontSize, 30))

	err := Set(objs, []int{0, 5, 1}, attr.FontSize, "large")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidArgument), "out-of-range index is reported")
	for i := range objs {
		v, _ := objs[i].Value(attr.FontSize)
		assert.False(t, v.IsSet(), "object %d falls back to the default", i)
	}

	assert.True(t, errors.Is(Set(objs, nil, attr.Text, "x"), errors.ErrCodeInvalidArgument))
	assert.True(t, errors.Is(Set(objs, []int{0}, attr.Kind(99), "x"), errors.ErrCodeInvalidArgument))
}

func TestBatchUpdate(t *testing.T) {
	objs := make([]Object, 3)
	for i := range objs {
		objs[i] = New()
	}
	require.NoError(t, Update(objs, []int{0, 2, 2}))
	assert.NotNil(t, objs[0].Drawable())
	assert.Nil(t, objs[1].Drawable(), "unselected objects are not updated")
	assert.NotNil(t, objs[2].Drawable())

	err := Update(objs, []int{1, -1})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidArgument))
	assert.NotNil(t, objs[1].Drawable(), "valid indices still update")
}

func TestGetStringValue(t *testing.T) {
	withText := func(texts ...string) []Object {
		objs := newObjects(len(texts))
		for i, s := range texts {
			require.NoError(t, objs[i].SetString(attr.Text, s))
		}
		return objs
	}

	tests := []struct {
		name    string
		objs    []Object
		indices []int
		want    string
	}{
		{"all equal", withText("red", "red", "red"), []int{0, 1, 2}, "red"},
		{"mixed", withText("red", "blue"), []int{0, 1}, "<mixed>"},
		{"empty selection", withText("red"), nil, "<mixed>"},
		{"subset equal", withText("red", "blue", "red"), []int{0, 2}, "red"},
		{"out of range ignored", withText("red", "red"), []int{0, 9, 1}, "red"},
		{"only out of range", withText("red"), []int{4}, "<mixed>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetStringValue(tt.objs, tt.indices, attr.Text, "<mixed>"))
		})
	}

	t.Run("unset shows the default", func(t *testing.T) {
		objs := newObjects(2)
		assert.Equal(t, "16", GetStringValue(objs, All(objs), attr.FontSize, "<mixed>"))
	})

	t.Run("set and unset differ", func(t *testing.T) {
		objs := newObjects(2)
		require.NoError(t, objs[0].SetFloat32(attr.FontSize, 16))
		assert.Equal(t, "<mixed>", GetStringValue(objs, All(objs), attr.FontSize, "<mixed>"))
	})
}

func TestMergeIsWholesale(t *testing.T) {
	template := New()
	require.NoError(t, template.SetUint32(attr.Fill, 0xFF00FF00))
	require.NoError(t, template.SetString(attr.Shape, "ellipse"))

	objs := newObjects(2)
	require.NoError(t, objs[0].SetFloat32(attr.Width, 120))
	require.NoError(t, objs[1].SetString(attr.Text, "keep me?"))

	var cookie uint32
	_, _ = objs[0].GetCookie(attr.Width, &cookie)

	Merge(&template, objs)
	for i := range objs {
		assert.Equal(t, template.Values(), objs[i].Values(), "object %d", i)
	}
	changed, _ := objs[0].GetCookie(attr.Width, &cookie)
	assert.True(t, changed, "overwritten slot advances its version")
}

func TestMergeSelected(t *testing.T) {
	template := New()
	require.NoError(t, template.SetString(attr.Text, "t"))
	objs := newObjects(3)

	require.NoError(t, MergeSelected(&template, objs, []int{1}))
	assert.Equal(t, template.Values(), objs[1].Values())
	assert.NotEqual(t, template.Values(), objs[0].Values())

	assert.True(t, errors.Is(MergeSelected(&template, objs, []int{3}), errors.ErrCodeInvalidArgument))
	assert.True(t, errors.Is(MergeSelected(&template, objs, nil), errors.ErrCodeInvalidArgument))
}

func TestSelection(t *testing.T) {
	objs := newObjects(4)
	assert.Equal(t, []int{0, 1, 2, 3}, All(objs))
	assert.Equal(t, []int{0, 1, 2, 3}, Selected(objs), "new objects start selected")

	SetSelected(objs, All(objs), false)
	assert.Empty(t, Selected(objs))

	SetSelected(objs, []int{3, 1, 10}, true)
	assert.Equal(t, []int{1, 3}, Selected(objs))
	assert.Equal(t, FlagsNone, objs[0].Flags)
}

func TestHitTest(t *testing.T) {
	objs := newObjects(3)
	require.NoError(t, objs[2].SetFloat32(attr.PositionX, 20))
	require.NoError(t, objs[2].SetFloat32(attr.PositionY, 20))
	Arrange(objs, layout(0, 0))

	assert.Equal(t, 2, HitTest(objs, 30, 30), "topmost object wins")
	assert.Equal(t, 0, HitTest(objs, 12, 12))
	assert.Equal(t, 1, HitTest(objs, 70, 12))
	assert.Equal(t, -1, HitTest(objs, 500, 500))

	require.NoError(t, objs[2].SetBool(attr.Visibility, false))
	assert.Equal(t, 0, HitTest(objs, 30, 30), "hidden objects are skipped")
}

func TestDuplicateAndRemove(t *testing.T) {
	objs := newObjects(2)
	require.NoError(t, objs[1].SetString(attr.Text, "dup"))
	shared := objs[1].Drawable()

	objs = Duplicate(objs, []int{1, 7})
	require.Len(t, objs, 3)
	assert.Same(t, shared, objs[2].Drawable())
	assert.Equal(t, 2, shared.Refs())
	assert.Equal(t, objs[1].Values(), objs[2].Values())

	require.NoError(t, objs[2].SetString(attr.Text, "changed"))
	text, _ := objs[1].String(attr.Text)
	assert.Equal(t, "dup", text, "edits do not leak through the shared drawable")

	objs = Remove(objs, []int{1})
	require.Len(t, objs, 2)
	assert.Equal(t, 1, shared.Refs())
	text, _ = objs[1].String(attr.Text)
	assert.Equal(t, "changed", text, "remaining order is kept")

	objs = Remove(objs, []int{5})
	assert.Len(t, objs, 2)
}

func TestSharedDrawableMeasuresPerObject(t *testing.T) {
	a := New()
	a.Update()
	b := a.Clone()
	require.Same(t, a.Drawable(), b.Drawable())

	require.NoError(t, a.SetString(attr.Shape, "rect"))
	require.NoError(t, a.SetString(attr.Text, "a"))
	require.NoError(t, a.SetFloat32(attr.FontSize, 20))
	require.NoError(t, a.SetFloat32(attr.Width, 200))
	require.NoError(t, a.SetFloat32(attr.Height, 200))
	a.Update()
	require.Equal(t, geom.R(76, 76, 124, 124), a.ContentBounds)

	// Removing a slides b into a's slot.
	objs := Remove([]Object{a, b}, []int{0})
	require.Len(t, objs, 1)
	objs[0].Update()
	assert.Equal(t, geom.R(0, 0, 48, 48), objs[0].ContentBounds)
	assert.Equal(t, geom.R(0, 0, 48, 48), objs[0].LayoutBounds)
	assert.Equal(t, 1, objs[0].Drawable().Refs())
}
