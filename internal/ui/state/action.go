package state

// Action is the operation armed for the selected session row. Left/right
// cycling walks the closed order Attach → Rename → Kill and saturates at both
// ends rather than wrapping.
type Action int

const (
	ActionAttach Action = iota
	ActionRename
	ActionKill
)

// Next returns the following action, staying on ActionKill at the edge.
func (a Action) Next() Action {
	if a < ActionKill {
		return a + 1
	}
	return ActionKill
}

// Prev returns the preceding action, staying on ActionAttach at the edge.
func (a Action) Prev() Action {
	if a > ActionAttach {
		return a - 1
	}
	return ActionAttach
}

func (a Action) String() string {
	switch a {
	case ActionAttach:
		return "attach"
	case ActionRename:
		return "rename"
	case ActionKill:
		return "kill"
	default:
		return "unknown"
	}
}
