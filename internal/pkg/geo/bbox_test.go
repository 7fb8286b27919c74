package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBBoxFromCenter(t *testing.T) {
	t.Run("box surrounds the center", func(t *testing.T) {
		box := BBoxFromCenter(28.6139, 77.2090, 8)

		assert.Less(t, box.South, 28.6139)
		assert.Greater(t, box.North, 28.6139)
		assert.Less(t, box.West, 77.2090)
		assert.Greater(t, box.East, 77.2090)
	})

	t.Run("latitude delta is radius over 111", func(t *testing.T) {
		box := BBoxFromCenter(0, 0, 111)

		assert.InDelta(t, -1.0, box.South, 1e-9)
		assert.InDelta(t, 1.0, box.North, 1e-9)
	})

	t.Run("longitude span widens away from the equator", func(t *testing.T) {
		atEquator := BBoxFromCenter(0, 10, 8)
		atHighLatitude := BBoxFromCenter(60, 10, 8)

		equatorSpan := atEquator.East - atEquator.West
		highLatitudeSpan := atHighLatitude.East - atHighLatitude.West
		assert.Greater(t, highLatitudeSpan, equatorSpan)
	})

	t.Run("larger radius yields a strictly larger box", func(t *testing.T) {
		small := BBoxFromCenter(28.6139, 77.2090, 8)
		large := BBoxFromCenter(28.6139, 77.2090, 12)

		assert.Less(t, large.South, small.South)
		assert.Greater(t, large.North, small.North)
		assert.Less(t, large.West, small.West)
		assert.Greater(t, large.East, small.East)
	})
}
