package interact

import tea "github.com/charmbracelet/bubbletea"

// keyTypes maps the logical keys spec.md §6 names that bubbles/textinput
// actually reacts to onto bubbletea's KeyType. Alt/CapsLock/Ctrl/Shift have
// no standalone bubbletea KeyMsg (terminals report modifiers attached to
// another key, not as their own keydown), so they're left untranslated —
// textinput never sees a message for them, same as it never would over a
// real terminal.
var keyTypes = map[Key]tea.KeyType{
	KeyEscape:     tea.KeyEsc,
	KeyBackspace:  tea.KeyBackspace,
	KeyDelete:     tea.KeyDelete,
	KeyInsert:     tea.KeyInsert,
	KeyEnter:      tea.KeyEnter,
	KeyTab:        tea.KeyTab,
	KeyArrowUp:    tea.KeyUp,
	KeyArrowDown:  tea.KeyDown,
	KeyArrowLeft:  tea.KeyLeft,
	KeyArrowRight: tea.KeyRight,
	KeyHome:       tea.KeyHome,
	KeyEnd:        tea.KeyEnd,
	KeyPageUp:     tea.KeyPgUp,
	KeyPageDown:   tea.KeyPgDown,
}

// keyMsgs translates one frame's Input into the tea.Msg stream
// bubbles/textinput expects: one KeyMsg per newly-pressed logical key,
// followed by one KeyRunes message carrying the frame's typed characters
// (spec.md §4.6: "each typed character ... appends to the value").
func keyMsgs(in Input) []tea.Msg {
	var msgs []tea.Msg
	for key := range in.KeysPressed {
		if kt, ok := keyTypes[key]; ok {
			msgs = append(msgs, tea.KeyMsg{Type: kt})
		}
	}
	if len(in.Characters) > 0 {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: in.Characters})
	}
	return msgs
}
