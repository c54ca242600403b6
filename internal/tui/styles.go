// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// helpStyle renders key hints in the prompt, which owns no renderer of its own.
var helpStyle = lipgloss.NewStyle().Faint(true)

type styles struct {
	title    lipgloss.Style
	help     lipgloss.Style
	found    lipgloss.Style
	notFound lipgloss.Style
	errText  lipgloss.Style
}

// newStyles binds the palette to r. With noColor every style renders plain
// text.
func newStyles(r *lipgloss.Renderer, noColor bool) styles {
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		title:    r.NewStyle().Bold(true),
		help:     r.NewStyle().Faint(true),
		found:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		notFound: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		errText:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	}
}
