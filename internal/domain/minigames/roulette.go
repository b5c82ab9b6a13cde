package minigames

const Chambers = 6

// RouletteState is the shared revolver of a guild. Chamber 0 means unloaded.
type RouletteState struct {
	Chamber int
	Count   int
}

// Pull loads the revolver if needed and advances it one chamber. It returns
// the state after the shot and whether that shot fired. draw must return a
// value in [1, Chambers].
func Pull(s RouletteState, draw func() int) (RouletteState, bool) {
	if s.Chamber == 0 {
		s = RouletteState{Chamber: draw()}
	}
	s.Count++
	return s, s.Count >= s.Chamber
}

// Persisted is the state stored after a shot; a fired revolver is unloaded.
func (s RouletteState) Persisted(fired bool) RouletteState {
	if fired {
		return RouletteState{}
	}
	return s
}
