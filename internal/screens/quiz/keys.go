package quiz

import (
	"charm.land/bubbles/v2/key"

	core "github.com/abhisek/multiquiz/internal/quiz"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Pick   key.Binding
	Submit key.Binding
	Next   key.Binding
	Retake key.Binding
	Back   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "move")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Toggle: key.NewBinding(key.WithKeys("space", " ", "x"), key.WithHelp("space", "toggle")),
		Pick:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "pick")),
		Submit: key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "submit")),
		Next:   key.NewBinding(key.WithKeys("enter", "n"), key.WithHelp("enter", "next")),
		Retake: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retake")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
	}
}

// sync enables exactly the bindings the session state allows.
func (k *keyMap) sync(state core.State) {
	answering := state.CanSubmit()
	k.Up.SetEnabled(answering)
	k.Down.SetEnabled(answering)
	k.Toggle.SetEnabled(answering)
	k.Pick.SetEnabled(answering)
	k.Submit.SetEnabled(answering)
	k.Next.SetEnabled(state.CanAdvance())
}

// hints lists the bindings in footer order.
func (k keyMap) hints() []key.Binding {
	return []key.Binding{k.Up, k.Toggle, k.Pick, k.Submit, k.Next, k.Retake, k.Back}
}
