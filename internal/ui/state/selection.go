package state

// Selection addresses one slot in the virtual session list. The list holds
// every session plus one trailing synthetic "create new session" slot, so a
// valid index always satisfies 0 <= Index <= sessionCount.
type Selection struct {
	Index  int
	Action Action
}

// MoveUp moves the selection one slot up. Any movement re-arms ActionAttach.
func (s *Selection) MoveUp() bool {
	if s.Index == 0 {
		return false
	}
	s.Index--
	s.Action = ActionAttach
	return true
}

// MoveDown moves the selection one slot down within totalSlots. Any movement
// re-arms ActionAttach.
func (s *Selection) MoveDown(totalSlots int) bool {
	if s.Index >= totalSlots-1 {
		return false
	}
	s.Index++
	s.Action = ActionAttach
	return true
}

// NextAction advances the armed action. The create slot has no actions, so
// cycling only applies while a real session is addressed.
func (s *Selection) NextAction(sessionCount int) bool {
	if s.Index >= sessionCount {
		return false
	}
	next := s.Action.Next()
	if next == s.Action {
		return false
	}
	s.Action = next
	return true
}

// PrevAction retreats the armed action, with the same create-slot guard.
func (s *Selection) PrevAction(sessionCount int) bool {
	if s.Index >= sessionCount {
		return false
	}
	prev := s.Action.Prev()
	if prev == s.Action {
		return false
	}
	s.Action = prev
	return true
}

// Clamp pulls the index back into range after the session list changed. The
// trailing create slot (index == sessionCount) is always valid.
func (s *Selection) Clamp(sessionCount int) {
	if s.Index > sessionCount {
		s.Index = sessionCount
	}
	if s.Index < 0 {
		s.Index = 0
	}
}

// OnCreateSlot reports whether the selection addresses the synthetic
// "create new session" slot rather than a real session.
func (s *Selection) OnCreateSlot(sessionCount int) bool {
	return s.Index == sessionCount
}
