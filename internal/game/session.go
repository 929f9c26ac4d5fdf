package game

type GameState int

const (
	StatePlaying GameState = iota
	StateWon               // jellyfish registry emptied while rocks remain
	StateLost              // rock registry emptied
)

// GameSession tracks the match state. Won and Lost are terminal: they are
// exited only by an explicit reset from the next pointer press.
type GameSession struct {
	State GameState
}

// CheckEnd evaluates the end-of-tick transitions. Rock loss wins ties: the
// Lost invariant is tied to the rock registry being empty.
func (s *GameSession) CheckEnd(rocksEmpty, jelliesEmpty bool, audio AudioSink) {
	if s.State != StatePlaying {
		return
	}
	if rocksEmpty {
		s.State = StateLost
		if audio != nil {
			audio.Lose()
		}
		return
	}
	if jelliesEmpty {
		s.State = StateWon
		if audio != nil {
			audio.Win()
		}
	}
}
