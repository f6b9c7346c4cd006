package turnaround

import "time"

// RevealPhase names one step of the archetype reveal choreography.
type RevealPhase string

const (
	PhaseCalculating       RevealPhase = "calculating"
	PhaseScanning          RevealPhase = "scanning"
	PhaseShowingArchetypes RevealPhase = "showing-archetypes"
	PhaseHighlighting      RevealPhase = "highlighting"
	PhaseSteppingForward   RevealPhase = "stepping-forward"
	PhaseUserJoins         RevealPhase = "user-joins"
	PhaseClapping          RevealPhase = "clapping"
	PhaseFinalReveal       RevealPhase = "final-reveal"
	PhaseComplete          RevealPhase = "complete"
)

// revealStep pairs a phase with how long it stays on screen.
type revealStep struct {
	phase    RevealPhase
	duration time.Duration
}

// revealSteps is the fixed phase sequence. No branching: a reveal only
// ever advances.
var revealSteps = []revealStep{
	{PhaseCalculating, 2000 * time.Millisecond},
	{PhaseScanning, 1500 * time.Millisecond},
	{PhaseShowingArchetypes, 1200 * time.Millisecond},
	{PhaseHighlighting, 1000 * time.Millisecond},
	{PhaseSteppingForward, 1200 * time.Millisecond},
	{PhaseUserJoins, 1500 * time.Millisecond},
	{PhaseClapping, 2500 * time.Millisecond},
	{PhaseFinalReveal, 2000 * time.Millisecond},
}

// RevealSequence walks the reveal phases in order. The UI drives it with a
// timer: show Current for its Duration, then Advance.
type RevealSequence struct {
	index int
}

// NewRevealSequence starts at the first phase.
func NewRevealSequence() *RevealSequence {
	return &RevealSequence{}
}

// Current returns the active phase and its duration. After the last timed
// phase it returns PhaseComplete with zero duration.
func (r *RevealSequence) Current() (RevealPhase, time.Duration) {
	if r.index >= len(revealSteps) {
		return PhaseComplete, 0
	}
	step := revealSteps[r.index]
	return step.phase, step.duration
}

// Advance moves to the next phase and reports whether the sequence is
// still running.
func (r *RevealSequence) Advance() bool {
	if r.index >= len(revealSteps) {
		return false
	}
	r.index++
	return r.index < len(revealSteps)
}

// Done reports whether the sequence has reached PhaseComplete.
func (r *RevealSequence) Done() bool {
	return r.index >= len(revealSteps)
}
