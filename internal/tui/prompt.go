// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/internal/prompt"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const passwordCharLimit = 1024

// passwordModel is the Bubble Tea model of the masked password prompt. It
// quits as soon as the user submits or cancels.
type passwordModel struct {
	label string
	input textinput.Model

	submitted bool
	cancelled bool
}

func newPasswordModel(label string) passwordModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.CharLimit = passwordCharLimit
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return passwordModel{label: label, input: input}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - enter: submits the current value and quits.
//   - esc/ctrl+c: cancels and quits.
//
// All other messages are forwarded to the input widget.
func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.submit):
			m.submitted = true
			m.input.Blur()
			return m, tea.Quit
		case key.Matches(keyMsg, keys.cancel):
			m.cancelled = true
			m.input.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model]. Nothing is left on screen once the prompt is
// done.
func (m passwordModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.label)
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(keys.submit.Help().Key + ": " + keys.submit.Help().Desc + " │ " +
		keys.cancel.Help().Key + ": " + keys.cancel.Help().Desc))
	b.WriteString("\n")

	return b.String()
}

// PasswordPrompt is a [prompt.SecretReader] backed by a Bubble Tea program.
// The program owns the terminal mode while it runs and restores it on exit,
// including on cancellation through ctx.
type PasswordPrompt struct {
	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

func NewPasswordPrompt(in io.Reader, out io.Writer, logger *logger.Logger) *PasswordPrompt {
	return &PasswordPrompt{in: in, out: out, logger: logger}
}

func (p *PasswordPrompt) ReadSecret(ctx context.Context, label string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", prompt.ErrCancelled, err)
	}

	program := tea.NewProgram(newPasswordModel(label),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	finalModel, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", prompt.ErrCancelled, err)
		}
		return nil, fmt.Errorf("run password prompt: %w", err)
	}

	result, ok := finalModel.(passwordModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.cancelled || !result.submitted {
		p.logger.Debug().Msg("password prompt cancelled")
		return nil, prompt.ErrCancelled
	}

	secret := []byte(strings.TrimSpace(result.input.Value()))
	if len(secret) == 0 {
		return nil, prompt.ErrEmptySecret
	}

	return secret, nil
}
