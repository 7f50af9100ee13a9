package crossing

// CharacterSelector lets the player pick a profile before a run starts.
type CharacterSelector struct {
	Characters []Profile
	Position   int
	HasFocus   bool

	selected func(Profile)
}

// NewCharacterSelector creates a selector over the given roster.
func NewCharacterSelector(characters []Profile) *CharacterSelector {
	return &CharacterSelector{
		Characters: characters,
		selected:   func(Profile) {},
	}
}

// OnCharacterSelected replaces the selection handler. A nil handler restores the no-op.
func (s *CharacterSelector) OnCharacterSelected(fn func(Profile)) {
	if fn == nil {
		fn = func(Profile) {}
	}
	s.selected = fn
}

// Current returns the profile under the cursor.
func (s *CharacterSelector) Current() (Profile, bool) {
	if s.Position < 0 || s.Position >= len(s.Characters) {
		return Profile{}, false
	}
	return s.Characters[s.Position], true
}

// HandleInput moves the cursor or confirms the selection.
// The cursor is clamped to the roster; other commands are ignored.
func (s *CharacterSelector) HandleInput(cmd Command) {
	switch cmd {
	case CommandLeft:
		if s.Position > 0 {
			s.Position--
		}
	case CommandRight:
		if s.Position < len(s.Characters)-1 {
			s.Position++
		}
	case CommandEnter:
		if p, ok := s.Current(); ok {
			s.selected(p)
		}
	}
}
