// Package ui contains the Bubble Tea program that powers the session manager.
// Model.Update is the controller: it owns every piece of interactive state
// (mode, selection, composer input, error slot, pending action) and applies
// keystrokes to it, calling the Backend synchronously for mutations.
// Model.View is the render adapter: a pure function from the current state
// snapshot to a frame string.
//
// The selection walks a virtual list of all sessions plus one trailing
// "create new session" slot, so its index is always within
// [0, len(sessions)]. Refreshing replaces the session slice wholesale and
// clamps the index back into range. The armed action (attach, rename, kill)
// belongs to the selection and resets to attach whenever the cursor moves.
//
// The program exits through the pending action: quit, or attach with a
// target session name. internal/app inspects it after the program returns
// and performs the attach hand-off outside the TUI.
package ui
