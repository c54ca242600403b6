// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// pwncheck client.
//
// All Msg* constants are human-readable strings shown to the user: the
// banner, the prompt, the check result and the explanation of every failure.
// Keeping them in one place ensures consistent wording between the plain and
// the TUI front ends.
package app

const (
	// AppName is the tool name shown in the banner.
	AppName = "pwncheck"

	// MsgPrefixNotice reassures the user about what leaves the machine.
	MsgPrefixNotice = "Only the first 5 characters of the password's SHA-1 hash are sent, never the password itself."

	// MsgPrompt is the default prompt for the candidate password.
	MsgPrompt = "Enter password to check: "

	// MsgChecking is printed while the range lookup is in flight.
	MsgChecking = "Checking password against the breach corpus..."

	// MsgFound is the result line for a breached password. It takes the
	// occurrence count.
	MsgFound = "Password FOUND in breach corpus, occurred %d times."

	// MsgNotFound is the result line for a password absent from the corpus.
	MsgNotFound = "Password NOT found in breach corpus."

	// MsgEmptyPassword is shown when no password was entered.
	MsgEmptyPassword = "no password entered"

	// MsgCancelled is shown when the user aborts the prompt or interrupts
	// the check.
	MsgCancelled = "cancelled"

	// MsgTerminalMode is shown when echo cannot be disabled or restored.
	MsgTerminalMode = "could not control terminal echo"

	// MsgNotTerminal is shown for the terminal prompt when stdin is not a
	// terminal.
	MsgNotTerminal = "standard input is not a terminal, use -prompt stdin for piped input"

	// MsgClipboard is shown when the clipboard cannot be read.
	MsgClipboard = "could not read password from clipboard"

	// MsgNetwork is shown when the breach service cannot be reached or the
	// request times out.
	MsgNetwork = "breach service is unreachable"

	// MsgRateLimited is shown for HTTP 429.
	MsgRateLimited = "breach service rate limit reached, try again later"

	// MsgServiceUnavailable is shown for HTTP 502, 503 and 504.
	MsgServiceUnavailable = "breach service is temporarily unavailable"

	// MsgUnexpectedStatus is shown for any other non-2xx status.
	MsgUnexpectedStatus = "breach service rejected the request"

	// MsgResponseFormat is shown when the range response cannot be parsed.
	MsgResponseFormat = "breach service returned a malformed response"
)
