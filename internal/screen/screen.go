package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/pokefit/pokefit/internal/ui/layout"
)

// Screen is a full-window view managed by the router.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string
}

// KeyHintProvider is an optional interface for screens that supply their
// own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackProvider is an optional interface for screens that show a back
// affordance in the header. An empty label hides it.
type BackProvider interface {
	BackLabel() string
}

// Resumer is an optional interface for screens that need to react when a
// screen pushed on top of them is popped.
type Resumer interface {
	Resume() tea.Cmd
}
