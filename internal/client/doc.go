// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the pwncheck application runtime.
//
// It wires secret acquisition, the breach check and result output into a
// single run: banner, prompt, check, result. Errors are returned to the
// caller, which decides how to report them and which exit code to use.
package client
