// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-pwned-check/internal/app"
	"github.com/MKhiriev/go-pwned-check/models"
	"github.com/charmbracelet/lipgloss"
)

// Report writes the banner, the check result and errors to out.
type Report struct {
	out    io.Writer
	styles styles
}

// NewReport creates a [Report] rendering for out. Colors follow the
// capabilities of out; noColor forces plain text.
func NewReport(out io.Writer, noColor bool) *Report {
	return &Report{
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out), noColor),
	}
}

// Banner prints the tool name, its version and the prefix-only notice.
func (r *Report) Banner(info models.AppBuildInfo) {
	var b strings.Builder

	b.WriteString(r.styles.title.Render(app.AppName))
	b.WriteString(" ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString(r.styles.help.Render(app.MsgPrefixNotice))
	b.WriteString("\n")

	fmt.Fprint(r.out, b.String())
}

// Version prints the full build info line.
func (r *Report) Version(info models.AppBuildInfo) {
	fmt.Fprintf(r.out, "%s %s\n", app.AppName, info)
}

// Checking prints the progress line shown while the lookup runs.
func (r *Report) Checking() {
	fmt.Fprintln(r.out, r.styles.help.Render(app.MsgChecking))
}

// Result prints the one-line outcome of a check.
func (r *Report) Result(result models.MatchResult) {
	fmt.Fprintln(r.out, renderResult(result, r.styles))
}

// Error prints a user-facing explanation of err.
func (r *Report) Error(err error) {
	fmt.Fprintln(r.out, r.styles.errText.Render("error: "+humanizeError(err)))
}

// renderResult formats result as the summary line.
func renderResult(result models.MatchResult, s styles) string {
	if result.Found() {
		return s.found.Render(fmt.Sprintf(app.MsgFound, result.Count))
	}
	return s.notFound.Render(app.MsgNotFound)
}
