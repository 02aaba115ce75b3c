package particle

import (
	"math"
	"math/rand/v2"
)

// Piece is one confetti fragment. Coordinates are in pixels.
type Piece struct {
	X, Y   float64
	Wobble float64
	Tilt   float64
	Color  int // index into the caller's palette

	velocity    float64
	angle       float64
	decay       float64
	gravity     float64
	wobbleSpeed float64
	tick        int
	total       int
}

// Opacity fades linearly from 1 to 0 over the piece lifetime.
func (p Piece) Opacity() float64 {
	if p.total <= 0 {
		return 0
	}
	return 1 - float64(p.tick)/float64(p.total)
}

// Alive reports whether the piece still has ticks left.
func (p Piece) Alive() bool {
	return p.tick < p.total
}

// System owns the live pieces of every burst emitted into it.
// It is not safe for concurrent use.
type System struct {
	rng    *rand.Rand
	pieces []Piece
}

// NewSystem creates an empty system. The seed makes runs reproducible.
func NewSystem(seed uint64) *System {
	return &System{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Emit launches the pieces of b inside a viewport of the given size.
// colors is the palette length; every piece gets a random index below it.
func (s *System) Emit(b Burst, width, height float64, colors int) {
	b = b.WithDefaults()
	if colors <= 0 {
		colors = 1
	}

	ox := b.Origin.X * width
	oy := b.Origin.Y * height
	radAngle := b.Angle * math.Pi / 180
	radSpread := b.Spread * math.Pi / 180

	for i := 0; i < b.ParticleCount; i++ {
		s.pieces = append(s.pieces, Piece{
			X:           ox,
			Y:           oy,
			Wobble:      s.rng.Float64() * 10,
			Tilt:        s.rng.Float64() * math.Pi,
			Color:       s.rng.IntN(colors),
			velocity:    b.StartVelocity*0.5 + s.rng.Float64()*b.StartVelocity*0.5,
			angle:       -radAngle + (0.5*radSpread - s.rng.Float64()*radSpread),
			decay:       b.Decay,
			gravity:     b.Gravity * 3,
			wobbleSpeed: 0.05 + s.rng.Float64()*0.05,
			total:       b.Ticks,
		})
	}
}

// Step advances every piece by n ticks and drops the ones that expired.
func (s *System) Step(n int) {
	for ; n > 0; n-- {
		live := s.pieces[:0]
		for _, p := range s.pieces {
			p.X += math.Cos(p.angle) * p.velocity
			p.Y += math.Sin(p.angle)*p.velocity + p.gravity
			p.velocity *= p.decay
			p.Wobble += p.wobbleSpeed
			p.Tilt += 0.1
			p.tick++
			if p.Alive() {
				live = append(live, p)
			}
		}
		s.pieces = live
	}
}

// Pieces returns a snapshot of the live pieces.
func (s *System) Pieces() []Piece {
	out := make([]Piece, len(s.pieces))
	copy(out, s.pieces)
	return out
}

// Len is the number of live pieces.
func (s *System) Len() int {
	return len(s.pieces)
}

// Clear drops every piece.
func (s *System) Clear() {
	s.pieces = s.pieces[:0]
}
