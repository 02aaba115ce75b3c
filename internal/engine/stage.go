package engine

// Stage is one phase of the celebration lifecycle.
type Stage string

const (
	StageInitial   Stage = "initial"   // Waiting for the start button
	StageCountdown Stage = "countdown" // Numbers counting down
	StageBirthday  Stage = "birthday"  // Congratulations, terminal
)

// String returns the string representation of the stage.
func (s Stage) String() string {
	return string(s)
}

// CanTransitionTo reports whether moving from s to target is allowed.
// Transitions only go forward and the birthday stage has no exit.
func (s Stage) CanTransitionTo(target Stage) bool {
	switch s {
	case StageInitial:
		return target == StageCountdown
	case StageCountdown:
		return target == StageBirthday
	default:
		return false
	}
}
