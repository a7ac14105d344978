package editor

// HandleKey applies one input event to the editor. It returns true when the
// session should end.
func (e *KeyEditor) HandleKey(ev KeyEvent) bool {
	if !ev.IsSpecial() {
		e.EnterChar(ev.Rune)
		return false
	}

	switch ev.SpecialKey {
	case KeyEscape:
		return true
	case KeyBackspace:
		e.DeleteChar(true)
	case KeyDelete:
		e.DeleteChar(false)
	case KeyHome:
		e.MoveHome()
	case KeyEnd:
		e.MoveEnd()
	case KeyArrowLeft:
		e.MoveLeft()
	case KeyArrowRight:
		e.MoveRight()
	case KeyArrowUp:
		e.MoveUp()
	case KeyArrowDown:
		e.MoveDown()
	case KeyUndo:
		e.Undo()
	case KeyRedo:
		e.Redo()
	}

	return false
}
