// Package screen renders the watch UI as view models. A router resolves
// the session's current screen ID to a renderer; renderers combine a state
// snapshot, the translation tables, and the reference content into a
// screen-specific body. Views are plain data for the host to draw.
package screen

// View is the rendered screen envelope. Dir, DarkMode, and FontSize are
// the host environment signals applied on every render.
type View struct {
	Screen   string `json:"screen"`
	Title    string `json:"title"`
	Dir      string `json:"dir"`
	DarkMode bool   `json:"darkMode"`
	FontSize int    `json:"fontSize"`
	Body     any    `json:"body"`
}

// Redirect is returned by a renderer whose precondition is unmet. The
// router navigates the store to Target and renders that screen instead.
type Redirect struct {
	Target string
}

func (r Redirect) Error() string {
	return "redirect to " + r.Target
}
