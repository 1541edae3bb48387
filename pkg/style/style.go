// Package style provides semantic styling for help output using lipgloss.
//
// All styling is semantic (Title, Section, Name, Muted) rather than visual. When styling is
// disabled every helper returns its input unchanged, with no ANSI codes.
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styler renders text for a single output stream.
type Styler struct {
	enabled bool

	title   lipgloss.Style
	section lipgloss.Style
	name    lipgloss.Style
	muted   lipgloss.Style
}

// New returns a Styler for w. Styling is off when disable is true, when the NO_COLOR convention
// is in effect, or when w is not a terminal.
func New(w io.Writer, disable bool) *Styler {
	r := lipgloss.NewRenderer(w)
	enabled := !disable && !termenv.EnvNoColor() && r.ColorProfile() != termenv.Ascii
	if !enabled {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Styler{
		enabled: enabled,
		title:   r.NewStyle().Bold(true),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		name:    r.NewStyle().Foreground(lipgloss.Color("6")),
		muted:   r.NewStyle().Faint(true),
	}
}

// Plain returns a Styler that never styles.
func Plain() *Styler {
	return &Styler{}
}

// Enabled reports whether the Styler emits ANSI codes.
func (s *Styler) Enabled() bool {
	return s != nil && s.enabled
}

// Title styles an application or command title.
func (s *Styler) Title(str string) string {
	if !s.Enabled() {
		return str
	}
	return s.title.Render(str)
}

// Section styles a section heading such as "Usage:".
func (s *Styler) Section(str string) string {
	if !s.Enabled() {
		return str
	}
	return s.section.Render(str)
}

// Name styles a command or flag name.
func (s *Styler) Name(str string) string {
	if !s.Enabled() {
		return str
	}
	return s.name.Render(str)
}

// Muted styles secondary text such as versions and authors.
func (s *Styler) Muted(str string) string {
	if !s.Enabled() {
		return str
	}
	return s.muted.Render(str)
}
