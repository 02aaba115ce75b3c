// Package particle holds the confetti burst parameter tables and a small
// fixed-step simulation that turns a burst into moving pieces.
//
// The model follows the usual confetti cannon: every piece leaves the origin
// with a random speed inside a cone, is pulled down by gravity, slowed by a
// per-tick decay and fades out after a fixed number of ticks.
package particle

// Point is a position in normalised viewport coordinates (0..1 on each axis).
type Point struct {
	X float64
	Y float64
}

// Burst describes a single confetti emission.
type Burst struct {
	// ParticleCount is the number of pieces launched.
	ParticleCount int

	// Angle is the launch direction in degrees, 90 being straight up.
	Angle float64

	// Spread is the width of the launch cone in degrees.
	Spread float64

	// StartVelocity is the initial speed in pixels per tick.
	StartVelocity float64

	// Decay multiplies the speed after every tick.
	Decay float64

	// Gravity is added to the vertical speed every tick.
	Gravity float64

	// Ticks is the lifetime of every piece.
	Ticks int

	// Origin is where the pieces start.
	Origin Point
}

// Defaults applied by WithDefaults when a field is left at its zero value.
const (
	DefaultAngle         = 90
	DefaultSpread        = 45
	DefaultStartVelocity = 45
	DefaultDecay         = 0.9
	DefaultGravity       = 1
	DefaultTicks         = 200
)

// DefaultOrigin is the centre of the viewport.
var DefaultOrigin = Point{X: 0.5, Y: 0.5}

// WithDefaults returns a copy of b where unset fields take the default value.
// Origin components are only defaulted together when both are zero, so an
// explicit origin such as {X: 0} is expressed with Y set as well.
func (b Burst) WithDefaults() Burst {
	if b.Angle == 0 {
		b.Angle = DefaultAngle
	}
	if b.Spread == 0 {
		b.Spread = DefaultSpread
	}
	if b.StartVelocity == 0 {
		b.StartVelocity = DefaultStartVelocity
	}
	if b.Decay == 0 {
		b.Decay = DefaultDecay
	}
	if b.Gravity == 0 {
		b.Gravity = DefaultGravity
	}
	if b.Ticks == 0 {
		b.Ticks = DefaultTicks
	}
	if b.Origin == (Point{}) {
		b.Origin = DefaultOrigin
	}
	return b
}

// -----------------------------------------------------------------------------
// Parameter tables
// -----------------------------------------------------------------------------

// Celebration is the strong one-shot burst fired when the countdown ends.
func Celebration() []Burst {
	return []Burst{
		{ParticleCount: 100, Spread: 70, Origin: Point{X: 0.5, Y: 0.6}},
	}
}

// EntryPair is fired once when the birthday stage is entered.
func EntryPair() []Burst {
	return sidePair(80)
}

// AmbientPair is the lighter pair repeated while the birthday stage lasts.
func AmbientPair() []Burst {
	return sidePair(50)
}

// sidePair builds two bursts from opposite horizontal edges aimed inwards.
func sidePair(count int) []Burst {
	return []Burst{
		{ParticleCount: count, Angle: 60, Spread: 55, Origin: Point{X: 0, Y: 0.5}},
		{ParticleCount: count, Angle: 120, Spread: 55, Origin: Point{X: 1, Y: 0.5}},
	}
}

// TotalParticles sums the particle count of a burst list.
func TotalParticles(bursts []Burst) int {
	n := 0
	for _, b := range bursts {
		n += b.ParticleCount
	}
	return n
}
