package drawable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/canvas"
	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/geom"
)

// fakeSource is a minimal Source backed by a value array.
type fakeSource struct {
	values  attr.Values
	cookies attr.Cookies
}

func (f *fakeSource) set(k attr.Kind, v attr.Value) {
	f.values[k] = v
	f.cookies.Advance(k)
}

func (f *fakeSource) GetString(id attr.Kind) (string, error) {
	v, err := f.values.Get(id)
	if err != nil {
		return "", err
	}
	if v.Type() != attr.TypeString {
		return "", errors.New(errors.ErrCodeNotFound, "%s is not a set string", id)
	}
	return v.Str(), nil
}

func (f *fakeSource) GetValueData(id attr.Kind) (attr.Type, []byte, error) {
	v, err := f.values.Get(id)
	if err != nil {
		return attr.TypeNone, nil, err
	}
	if !v.IsSet() {
		return attr.TypeNone, nil, errors.New(errors.ErrCodeNotFound, "%s is unset", id)
	}
	return v.Type(), v.Bytes(), nil
}

func (f *fakeSource) GetCookie(id attr.Kind, cookie *uint32) (bool, error) {
	if !id.Valid() {
		return false, errors.New(errors.ErrCodeNotFound, "unknown attribute id %d", uint32(id))
	}
	changed := *cookie != f.cookies[id]
	*cookie = f.cookies[id]
	return changed, nil
}

func TestTypedReadsFallBackToDefaults(t *testing.T) {
	src := &fakeSource{}
	assert.Equal(t, "rect", String(src, attr.Shape))
	assert.Equal(t, float32(16), Float32(src, attr.FontSize))
	assert.Equal(t, uint32(0xFF000000), Uint32(src, attr.Color))
	assert.True(t, Bool(src, attr.Visibility))
	assert.False(t, IsSet(src, attr.Width))

	src.set(attr.FontSize, attr.Float32(9))
	src.set(attr.Shape, attr.String("text"))
	assert.Equal(t, float32(9), Float32(src, attr.FontSize))
	assert.Equal(t, "text", String(src, attr.Shape))
	assert.Equal(t, "", String(src, attr.Kind(99)))
}

func TestShapeIntrinsicSize(t *testing.T) {
	tests := []struct {
		name string
		set  map[attr.Kind]attr.Value
		want geom.Rect
	}{
		{
			name: "default rect",
			want: geom.R(0, 0, 48, 48),
		},
		{
			name: "text",
			set: map[attr.Kind]attr.Value{
				attr.Shape:    attr.String("text"),
				attr.Text:     attr.String("abcde"),
				attr.FontSize: attr.Float32(10),
			},
			want: geom.R(0, 0, 30, 12),
		},
		{
			name: "content centered in larger box",
			set: map[attr.Kind]attr.Value{
				attr.Width:  attr.Float32(100),
				attr.Height: attr.Float32(50),
			},
			want: geom.R(26, 1, 74, 49),
		},
		{
			name: "content overflowing box",
			set: map[attr.Kind]attr.Value{
				attr.Width: attr.Float32(8),
			},
			want: geom.R(-20, 0, 28, 48),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{}
			for k, v := range tt.set {
				src.set(k, v)
			}
			assert.Equal(t, tt.want, New().Update(src))
		})
	}
}

func TestMeasurementCache(t *testing.T) {
	src := &fakeSource{}
	var m Measurement
	d := New()

	first := m.Measure(d, src)
	m.Measure(d, src)
	assert.Equal(t, 1, m.Count(), "unchanged attributes should reuse the cache")

	src.set(attr.Color, attr.Uint32(0xFFFF0000))
	m.Measure(d, src)
	assert.Equal(t, 1, m.Count(), "color does not affect measurement")

	src.set(attr.Width, attr.Float32(96))
	second := m.Measure(d, src)
	assert.Equal(t, 2, m.Count())
	assert.NotEqual(t, first, second)

	m.Reset()
	assert.Equal(t, second, m.Measure(d, src))
	assert.Equal(t, 1, m.Count())
}

func TestMeasurementPerHolder(t *testing.T) {
	d := New()
	big, small := &fakeSource{}, &fakeSource{}
	big.set(attr.Width, attr.Float32(200))
	big.set(attr.Height, attr.Float32(200))

	var mBig, mSmall Measurement
	assert.Equal(t, geom.R(76, 76, 124, 124), mBig.Measure(d, big))
	assert.Equal(t, geom.R(0, 0, 48, 48), mSmall.Measure(d, small), "a shared drawable keeps no result of its own")
}

func TestShapeDraw(t *testing.T) {
	t.Run("rect", func(t *testing.T) {
		src := &fakeSource{}
		src.set(attr.Fill, attr.Uint32(0xFF00FF00))
		rec := canvas.NewRecorder(canvas.Layout{})
		New().Draw(rec, src)

		require.Len(t, rec.Ops, 2)
		assert.Equal(t, canvas.OpFillRect, rec.Ops[0].Kind)
		assert.Equal(t, canvas.Color(0xFF00FF00), rec.Ops[0].Color)
		assert.Equal(t, canvas.OpStrokeRect, rec.Ops[1].Kind)
		assert.Equal(t, float32(1), rec.Ops[1].Width)
	})

	t.Run("ellipse with caption", func(t *testing.T) {
		src := &fakeSource{}
		src.set(attr.Shape, attr.String("ellipse"))
		src.set(attr.Fill, attr.Uint32(0xFF0000FF))
		src.set(attr.Text, attr.String("node"))
		rec := canvas.NewRecorder(canvas.Layout{})
		New().Draw(rec, src)

		require.Len(t, rec.Ops, 2)
		assert.Equal(t, canvas.OpFillEllipse, rec.Ops[0].Kind)
		assert.Equal(t, []string{"node"}, rec.Texts())
	})

	t.Run("text", func(t *testing.T) {
		src := &fakeSource{}
		src.set(attr.Shape, attr.String("text"))
		src.set(attr.Text, attr.String("hello"))
		src.set(attr.FontFamily, attr.String("serif"))
		rec := canvas.NewRecorder(canvas.Layout{})
		New().Draw(rec, src)

		require.Len(t, rec.Ops, 1)
		assert.Equal(t, canvas.Font{Family: "serif", Size: 16}, rec.Ops[0].Font)
	})
}

func TestShared(t *testing.T) {
	s := Share(New())
	assert.Equal(t, 1, s.Refs())

	same := s.Acquire()
	assert.Same(t, s, same)
	assert.Equal(t, 2, s.Refs())

	assert.False(t, s.Release())
	assert.NotNil(t, s.Drawable())
	assert.True(t, s.Release())
	assert.Nil(t, s.Drawable())

	var none *Shared
	assert.Equal(t, 0, none.Refs())
	assert.Nil(t, none.Acquire())
	assert.True(t, none.Release())
}
