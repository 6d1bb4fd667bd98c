package segmented

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	animFPS         = 60
	springFrequency = 7.0
	springDamping   = 0.8

	// compressedScale is the press-feedback scale applied around the
	// indicator's center while the selected segment is held.
	compressedScale  = 0.93
	compressDuration = 140 * time.Millisecond

	settleEpsilon = 0.01
)

// Geometry is the indicator's derived size and position. Measurement fully
// determines the size; the primary selection fully determines the offset.
type Geometry struct {
	Offset float64
	Width  float64
	Height float64
}

// ComputeGeometry derives the indicator from the current measurement and
// primary selection. An empty control degenerates to zero geometry.
func ComputeGeometry(m Measured, count, primary int) Geometry {
	if count == 0 {
		return Geometry{}
	}
	w := float64(m.TotalWidth()) / float64(count)
	return Geometry{
		Offset: -w*float64(primary) + edgePadding(primary, count),
		Width:  w,
		Height: math.Max(float64(m.MaxSegmentHeight())-2, 0),
	}
}

// edgePadding nudges the indicator at the row's ends so its rounded corners
// stay flush with the outer container.
func edgePadding(i, count int) float64 {
	switch {
	case i == 0:
		return -1
	case i == count-1:
		return 1
	default:
		return 0
	}
}

// FrameMsg drives one animation frame.
type FrameMsg struct{}

func frameCmd() tea.Cmd {
	return tea.Tick(time.Second/animFPS, func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}

// animator owns the indicator's two animated properties. The offset follows
// a spring toward its target; the compression scale follows a fixed-length
// ease-in-out ramp. The two never touch each other's values, so a selection
// slide and a press compression can run concurrently.
type animator struct {
	spring harmonica.Spring

	offset       float64
	velocity     float64
	targetOffset float64

	scale      float64
	scaleFrom  float64
	scaleTo    float64
	scaleT     float64 // ramp progress in [0, 1]
	compressed bool

	running bool
}

func newAnimator() animator {
	return animator{
		spring:  harmonica.NewSpring(harmonica.FPS(animFPS), springFrequency, springDamping),
		scale:   1,
		scaleTo: 1,
		scaleT:  1,
	}
}

// Snap places the offset immediately, without animating. Used for the first
// layout, before the indicator has a meaningful previous position.
func (a *animator) Snap(offset float64) {
	a.offset = offset
	a.targetOffset = offset
	a.velocity = 0
}

// RetargetOffset springs the offset toward a new target. Returns the frame
// command when this starts the loop.
func (a *animator) RetargetOffset(target float64) tea.Cmd {
	if target == a.targetOffset {
		return nil
	}
	a.targetOffset = target
	return a.start()
}

// SetCompressed ramps the scale toward the compressed or resting value.
func (a *animator) SetCompressed(compressed bool) tea.Cmd {
	if compressed == a.compressed {
		return nil
	}
	a.compressed = compressed
	a.scaleFrom = a.scale
	a.scaleTo = 1.0
	if compressed {
		a.scaleTo = compressedScale
	}
	a.scaleT = 0
	return a.start()
}

// Step advances one frame. Returns the next frame command, or nil once both
// animations are at rest.
func (a *animator) Step() tea.Cmd {
	if !a.running {
		return nil
	}

	a.offset, a.velocity = a.spring.Update(a.offset, a.velocity, a.targetOffset)

	if a.scaleT < 1 {
		a.scaleT = math.Min(a.scaleT+1.0/(compressDuration.Seconds()*animFPS), 1)
		a.scale = a.scaleFrom + (a.scaleTo-a.scaleFrom)*easeInOut(a.scaleT)
	}

	if a.settled() {
		a.offset = a.targetOffset
		a.velocity = 0
		a.scale = a.scaleTo
		a.running = false
		return nil
	}
	return frameCmd()
}

// Offset returns the current animated offset.
func (a *animator) Offset() float64 { return a.offset }

// Scale returns the current animated scale.
func (a *animator) Scale() float64 { return a.scale }

// Animating reports whether the frame loop is live.
func (a *animator) Animating() bool { return a.running }

func (a *animator) start() tea.Cmd {
	if a.running {
		return nil // frame loop already live
	}
	a.running = true
	return frameCmd()
}

func (a *animator) settled() bool {
	return math.Abs(a.offset-a.targetOffset) < settleEpsilon &&
		math.Abs(a.velocity) < settleEpsilon &&
		a.scaleT >= 1
}

// easeInOut is a cubic ease-in-out ramp over [0, 1].
func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}
