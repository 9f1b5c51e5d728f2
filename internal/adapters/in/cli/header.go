// Package cli is the terminal presentation of the driver app: a line-oriented
// shell that renders one screen at a time and maps typed commands onto the
// client core.
package cli

import "strings"

// Header is the banner shown on top of every screen.
type Header struct {
	Title       string
	ShowBack    bool
	ShowAccount bool
}

// Render returns the banner as one line, e.g. "[<] Order Detail [@]".
func (h Header) Render() string {
	parts := make([]string, 0, 3)
	if h.ShowBack {
		parts = append(parts, "[<]")
	}
	parts = append(parts, h.Title)
	if h.ShowAccount {
		parts = append(parts, "[@]")
	}
	return strings.Join(parts, " ")
}
