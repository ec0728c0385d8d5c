package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// MenuItem represents a single option button.
type MenuItem struct {
	ID    string
	Label string
}

// Menu is a vertical list of option buttons.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first item selected.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update moves the selection. Choosing an item is left to the caller.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k", "shift+tab":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j", "tab":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	}

	return m, nil
}

// SelectedID returns the id of the highlighted item.
func (m Menu) SelectedID() string {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return ""
	}
	return m.Items[m.Selected].ID
}

// View renders the buttons stacked with a blank line between them.
func (m Menu) View(width int) string {
	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		buttons = append(buttons, SurveyButton(item.Label, i == m.Selected, width))
	}
	return strings.Join(buttons, "\n\n")
}
