// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interact

import "github.com/pensool/pensool"

// Operand is something that can take the focus. *scene.Node implements it.
type Operand interface {
	Highlight(on bool)
	ActivateAssociatedControls(on bool)
}

// FocusManager tracks the focused operand: the node the user is about to
// act on. There is no selection, only this one operand. Focusing
// highlights it and rouses its feedback; unfocusing drops the highlight
// at once and the feedback after the fade delay.
type FocusManager struct {
	operand Operand
	fade    *FadeManager
}

// NewFocusManager returns a manager without an operand that fades through
// fade.
func NewFocusManager(fade *FadeManager) *FocusManager {
	return &FocusManager{fade: fade}
}

// Operand returns the focused operand, or nil.
func (f *FocusManager) Operand() Operand {
	return f.operand
}

// Focus makes thing the operand, possibly again. Feedback still fading
// from an earlier operand is removed first.
func (f *FocusManager) Focus(thing Operand) {
	if f.operand != nil {
		f.operand.Highlight(false)
	}
	f.fade.FocusGained()
	if f.operand != nil {
		// Never unfocused, so no fade was registered for it.
		f.operand.ActivateAssociatedControls(false)
	}
	f.operand = thing
	thing.Highlight(true)
	thing.ActivateAssociatedControls(true)
	pensool.Logger().Debug("interact: focus", "operand", thing)
}

// Unfocus drops the operand's highlight and schedules removal of its
// feedback. The operand stays current until the fade completes.
func (f *FocusManager) Unfocus() {
	if f.operand == nil {
		return
	}
	f.operand.Highlight(false)
	f.fade.RegisterCallback(f.unfocusFeedback)
	f.fade.FocusLost()
}

// unfocusFeedback runs when the fade completes or is cut short by a new
// focus, whichever comes first; the other finds no operand.
func (f *FocusManager) unfocusFeedback() {
	if f.operand == nil {
		return
	}
	f.operand.ActivateAssociatedControls(false)
	f.operand = nil
}
