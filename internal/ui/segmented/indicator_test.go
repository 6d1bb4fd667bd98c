package segmented

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func measuredFor(totalWidth, height int) Measured {
	return Measured{maxSegmentHeight: height, totalWidth: totalWidth}
}

func TestGeometryDeterminism(t *testing.T) {
	m := measuredFor(300, 10)

	cases := []struct {
		primary    int
		wantOffset float64
	}{
		{0, -1},   // -100*0 + edge padding -1
		{1, -100}, // middle, no padding
		{2, -199}, // -100*2 + edge padding +1
	}
	for _, tc := range cases {
		g := ComputeGeometry(m, 3, tc.primary)
		assert.Equal(t, tc.wantOffset, g.Offset, "primary=%d", tc.primary)
		assert.Equal(t, float64(100), g.Width)
		assert.Equal(t, float64(8), g.Height)
	}
}

func TestGeometryHeightClampsAtZero(t *testing.T) {
	g := ComputeGeometry(measuredFor(30, 1), 3, 0)
	assert.Equal(t, float64(0), g.Height)
}

func TestGeometryEmptyControl(t *testing.T) {
	g := ComputeGeometry(Measured{}, 0, 0)
	assert.Equal(t, Geometry{}, g)
}

func TestEdgePaddingSingleSegment(t *testing.T) {
	// With one segment the first-segment rule wins.
	assert.Equal(t, float64(-1), edgePadding(0, 1))
}

func TestSpringConvergesToTarget(t *testing.T) {
	a := newAnimator()
	a.Snap(0)

	cmd := a.RetargetOffset(-100)
	assert.NotNil(t, cmd, "retarget must start the frame loop")

	steps := 0
	for a.Animating() && steps < 2000 {
		a.Step()
		steps++
	}

	assert.Equal(t, float64(-100), a.Offset(), "settle snaps to the target")
	assert.Greater(t, steps, 1, "spring takes multiple frames")
}

func TestRetargetSameOffsetIsNoop(t *testing.T) {
	a := newAnimator()
	a.Snap(-50)
	assert.Nil(t, a.RetargetOffset(-50))
	assert.False(t, a.Animating())
}

func TestCompressionRampReachesScaleAndBack(t *testing.T) {
	a := newAnimator()

	cmd := a.SetCompressed(true)
	assert.NotNil(t, cmd)
	for a.Animating() {
		a.Step()
	}
	assert.Equal(t, compressedScale, a.Scale())

	cmd = a.SetCompressed(false)
	assert.NotNil(t, cmd)
	for a.Animating() {
		a.Step()
	}
	assert.Equal(t, float64(1), a.Scale())
}

func TestSetCompressedIdempotent(t *testing.T) {
	a := newAnimator()
	a.SetCompressed(true)
	assert.Nil(t, a.SetCompressed(true), "same state must not restart the ramp")
}

// Offset and scale animate concurrently without touching each other.
func TestAnimationsAreIndependent(t *testing.T) {
	a := newAnimator()
	a.Snap(0)

	a.RetargetOffset(-100)
	a.SetCompressed(true)
	for a.Animating() {
		a.Step()
	}

	assert.Equal(t, float64(-100), a.Offset())
	assert.Equal(t, compressedScale, a.Scale())
}

func TestEaseInOut(t *testing.T) {
	assert.Equal(t, float64(0), easeInOut(0))
	assert.Equal(t, float64(1), easeInOut(1))
	assert.Equal(t, 0.5, easeInOut(0.5))

	// Monotonic over the ramp.
	prev := -1.0
	for i := 0; i <= 10; i++ {
		v := easeInOut(float64(i) / 10)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestStepWhenIdleReturnsNil(t *testing.T) {
	a := newAnimator()
	assert.Nil(t, a.Step())
}
