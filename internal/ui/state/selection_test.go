package state

import "testing"

func TestMoveUpStopsAtTop(t *testing.T) {
	s := Selection{Index: 1, Action: ActionKill}
	if !s.MoveUp() {
		t.Fatalf("expected movement from index 1")
	}
	if s.Index != 0 {
		t.Fatalf("expected index 0, got %d", s.Index)
	}
	if s.Action != ActionAttach {
		t.Fatalf("expected action reset on movement, got %v", s.Action)
	}
	if s.MoveUp() {
		t.Fatalf("expected no movement past the top")
	}
}

func TestMoveDownStopsAtLastSlot(t *testing.T) {
	s := Selection{}
	total := 3 // two sessions plus the create slot
	if !s.MoveDown(total) || s.Index != 1 {
		t.Fatalf("expected index 1, got %d", s.Index)
	}
	if !s.MoveDown(total) || s.Index != 2 {
		t.Fatalf("expected index 2, got %d", s.Index)
	}
	if s.MoveDown(total) {
		t.Fatalf("expected no movement past the create slot")
	}
	if s.Index != 2 {
		t.Fatalf("expected index pinned at 2, got %d", s.Index)
	}
}

func TestMoveDownResetsAction(t *testing.T) {
	s := Selection{Index: 0, Action: ActionRename}
	if !s.MoveDown(3) {
		t.Fatalf("expected movement")
	}
	if s.Action != ActionAttach {
		t.Fatalf("expected action reset, got %v", s.Action)
	}
}

func TestActionCyclingOnlyOnSessions(t *testing.T) {
	s := Selection{Index: 2} // create slot when two sessions exist
	if s.NextAction(2) {
		t.Fatalf("expected no cycling on the create slot")
	}
	if s.PrevAction(2) {
		t.Fatalf("expected no cycling on the create slot")
	}
	s.Index = 1
	if !s.NextAction(2) || s.Action != ActionRename {
		t.Fatalf("expected rename armed, got %v", s.Action)
	}
	if !s.NextAction(2) || s.Action != ActionKill {
		t.Fatalf("expected kill armed, got %v", s.Action)
	}
	if s.NextAction(2) {
		t.Fatalf("expected saturation at kill")
	}
	if !s.PrevAction(2) || s.Action != ActionRename {
		t.Fatalf("expected rename armed, got %v", s.Action)
	}
	if !s.PrevAction(2) || s.Action != ActionAttach {
		t.Fatalf("expected attach armed, got %v", s.Action)
	}
	if s.PrevAction(2) {
		t.Fatalf("expected saturation at attach")
	}
}

func TestClampAfterShrink(t *testing.T) {
	s := Selection{Index: 4}
	s.Clamp(2)
	if s.Index != 2 {
		t.Fatalf("expected clamp to create slot index 2, got %d", s.Index)
	}
	s.Clamp(2)
	if s.Index != 2 {
		t.Fatalf("expected clamp idempotent, got %d", s.Index)
	}
	s.Index = -1
	s.Clamp(2)
	if s.Index != 0 {
		t.Fatalf("expected negative index clamped to 0, got %d", s.Index)
	}
}

func TestOnCreateSlot(t *testing.T) {
	s := Selection{Index: 0}
	if !s.OnCreateSlot(0) {
		t.Fatalf("expected index 0 to be the create slot with no sessions")
	}
	if s.OnCreateSlot(1) {
		t.Fatalf("expected index 0 to address a session when one exists")
	}
}
