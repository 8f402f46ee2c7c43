package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_TitleContentFooter(t *testing.T) {
	area := Rect{Width: 80, Height: 24}

	rects := Split(area, Vertical, 0, Length(3), Min(0), Length(2))

	require.Len(t, rects, 3)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 80, Height: 3}, rects[0])
	assert.Equal(t, Rect{X: 0, Y: 3, Width: 80, Height: 19}, rects[1])
	assert.Equal(t, Rect{X: 0, Y: 22, Width: 80, Height: 2}, rects[2])
}

func TestSplit_Percentages(t *testing.T) {
	tests := []struct {
		name string
		area Rect
		dir  Direction
		want []Rect
	}{
		{
			name: "even horizontal",
			area: Rect{X: 2, Y: 5, Width: 80, Height: 10},
			dir:  Horizontal,
			want: []Rect{
				{X: 2, Y: 5, Width: 40, Height: 10},
				{X: 42, Y: 5, Width: 40, Height: 10},
			},
		},
		{
			name: "odd horizontal gives slack to the last",
			area: Rect{Width: 81, Height: 10},
			dir:  Horizontal,
			want: []Rect{
				{X: 0, Y: 0, Width: 40, Height: 10},
				{X: 40, Y: 0, Width: 41, Height: 10},
			},
		},
		{
			name: "odd vertical",
			area: Rect{Width: 10, Height: 19},
			dir:  Vertical,
			want: []Rect{
				{X: 0, Y: 0, Width: 10, Height: 9},
				{X: 0, Y: 9, Width: 10, Height: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.area, tt.dir, 0, Percentage(50), Percentage(50))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_Margin(t *testing.T) {
	rects := Split(Rect{Width: 20, Height: 10}, Vertical, 1, Min(0))

	require.Len(t, rects, 1)
	assert.Equal(t, Rect{X: 1, Y: 1, Width: 18, Height: 8}, rects[0])
}

func TestSplit_TooSmall(t *testing.T) {
	tests := []struct {
		name string
		area Rect
	}{
		{name: "shorter than fixed parts", area: Rect{Width: 80, Height: 4}},
		{name: "zero height", area: Rect{Width: 80, Height: 0}},
		{name: "zero area", area: Rect{}},
		{name: "negative", area: Rect{Width: -5, Height: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rects := Split(tt.area, Vertical, 1, Length(3), Min(0), Length(2))
			require.Len(t, rects, 3)

			sum := 0
			for _, r := range rects {
				assert.GreaterOrEqual(t, r.Width, 0)
				assert.GreaterOrEqual(t, r.Height, 0)
				sum += r.Height
			}
			assert.LessOrEqual(t, sum, max(0, tt.area.Height))
		})
	}
}

func TestSplit_MinAbsorbsRemainder(t *testing.T) {
	rects := Split(Rect{Width: 10, Height: 30}, Vertical, 0, Min(5), Length(5))

	assert.Equal(t, 25, rects[0].Height)
	assert.Equal(t, 5, rects[1].Height)
	assert.Equal(t, 25, rects[1].Y)
}

func TestSplit_NoConstraints(t *testing.T) {
	assert.Nil(t, Split(Rect{Width: 10, Height: 10}, Vertical, 0))
}

func TestRect_Empty(t *testing.T) {
	assert.True(t, Rect{}.Empty())
	assert.True(t, Rect{Width: 5}.Empty())
	assert.False(t, Rect{Width: 1, Height: 1}.Empty())
}
