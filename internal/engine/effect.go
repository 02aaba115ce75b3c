package engine

import "github.com/tartampluch/go-celebration/internal/particle"

// EffectKind names the reason a confetti effect was fired.
type EffectKind string

const (
	EffectCelebration EffectKind = "celebration" // strong one-shot burst at zero
	EffectEntry       EffectKind = "entry"       // pair fired on entering the birthday stage
	EffectAmbient     EffectKind = "ambient"     // lighter pair repeated during the birthday stage
)

// Effect is a set of bursts to render together.
type Effect struct {
	Kind   EffectKind
	Bursts []particle.Burst
}

// EffectSink renders effects. Fire is called outside the controller lock.
type EffectSink interface {
	Fire(Effect)
}

// EffectFunc adapts a plain function to EffectSink.
type EffectFunc func(Effect)

// Fire calls f(e).
func (f EffectFunc) Fire(e Effect) {
	f(e)
}
