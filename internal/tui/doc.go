// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the terminal front end of pwncheck: a Bubble Tea password
// prompt with masked echo ([PasswordPrompt]) and the lipgloss-styled banner
// and result output ([Report]).
package tui
