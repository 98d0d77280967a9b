package ducpdf_test

import (
	"testing"

	"github.com/ducflair/ducpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementBuilder_Build(t *testing.T) {
	t.Parallel()

	t.Run("fills geometry, text and defaults", func(t *testing.T) {
		t.Parallel()

		b := &ducpdf.ElementBuilder{NewID: func() string { return "el-1" }}
		g := ducpdf.Geometry{X: 1, Y: 2, Width: 3, Height: 4, FontSize: 5}

		el := b.Build(g, "Hello")

		require.NotNil(t, el)
		assert.Equal(t, "el-1", el.ID)
		assert.Equal(t, ducpdf.ElementTypeText, el.Type)
		assert.Equal(t, 1.0, el.X)
		assert.Equal(t, 2.0, el.Y)
		assert.Equal(t, 3.0, el.Width)
		assert.Equal(t, 4.0, el.Height)
		assert.Equal(t, 5.0, el.FontSize)
		assert.Equal(t, "Hello", el.Text)

		assert.Equal(t, 100.0, el.Opacity)
		assert.False(t, el.Locked)
		assert.True(t, el.IsVisible)
		assert.False(t, el.IsDeleted)
		assert.Equal(t, 1.0, el.LineHeight)
		assert.True(t, el.AutoResize)
		assert.Equal(t, ducpdf.TextAlignLeft, el.TextAlign)
		assert.Equal(t, ducpdf.VerticalAlignTop, el.VerticalAlign)
		assert.Equal(t, ducpdf.FontFamilyRobotoMono, el.FontFamily)
		assert.Equal(t, ducpdf.ScopeMillimeters, el.Scope)
		assert.Equal(t, "Text Element", el.Label)
		assert.Zero(t, el.Angle)
		assert.Zero(t, el.ZIndex)
		assert.Zero(t, el.Roundness)
		assert.Empty(t, el.GroupIDs)
		assert.Nil(t, el.ContainerID)
		assert.Nil(t, el.OriginalText)
	})

	t.Run("generates a fresh id per element", func(t *testing.T) {
		t.Parallel()

		b := ducpdf.NewElementBuilder()

		first := b.Build(ducpdf.Geometry{}, "a")
		second := b.Build(ducpdf.Geometry{}, "b")

		assert.NotEmpty(t, first.ID)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("does not share slices with the template", func(t *testing.T) {
		t.Parallel()

		b := ducpdf.NewElementBuilder()

		el := b.Build(ducpdf.Geometry{}, "a")
		el.GroupIDs = append(el.GroupIDs, "group")

		assert.Empty(t, ducpdf.DefaultTextElement.GroupIDs)
	})
}
