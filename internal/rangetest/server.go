// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rangetest provides an in-process fake of the k-anonymity range API
// for tests. It serves GET /range/{prefix} with a chi router on top of
// httptest and records every request it receives, so tests can assert what
// actually left the client.
package rangetest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-pwned-check/internal/utils"
	"github.com/MKhiriev/go-pwned-check/models"
	"github.com/go-chi/chi/v5"
)

// paddingEntries is the number of zero-count lines appended when the client
// sends Add-Padding: true.
const paddingEntries = 3

// Request is what the fake server saw for one call.
type Request struct {
	Path       string
	Prefix     string
	UserAgent  string
	AddPadding bool
	RawQuery   string
	HasBody    bool
}

// Server is a fake range API.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	ranges   map[string]string
	requests []Request
	status   int
	delay    time.Duration
	lineEnd  string
}

// New starts a fake range API and registers its shutdown with t.Cleanup.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		ranges:  make(map[string]string),
		lineEnd: "\r\n",
	}

	r := chi.NewRouter()
	r.Get("/range/{prefix}", s.handleRange)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)

	return s
}

// SetRange sets the raw body served for prefix.
func (s *Server) SetRange(prefix, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranges[strings.ToUpper(prefix)] = body
}

// AddPasswords fills the corpus from plaintext candidates and their counts,
// grouping them by fingerprint prefix the way the real service does.
func (s *Server) AddPasswords(counts map[string]uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for password, count := range counts {
		fp := models.NewFingerprint(utils.HashSHA1([]byte(password)))
		line := fmt.Sprintf("%s:%d", fp.Suffix(), count)
		if existing := s.ranges[fp.Prefix()]; existing != "" {
			line = existing + s.lineEnd + line
		}
		s.ranges[fp.Prefix()] = line
	}
}

// FailWith makes every subsequent request answer with status. Zero restores
// normal behaviour.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Delay makes every subsequent request sleep before answering.
func (s *Server) Delay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

// Requests returns a copy of the recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) handleRange(w http.ResponseWriter, r *http.Request) {
	prefix := chi.URLParam(r, "prefix")

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Path:       r.URL.Path,
		Prefix:     prefix,
		UserAgent:  r.Header.Get("User-Agent"),
		AddPadding: strings.EqualFold(r.Header.Get("Add-Padding"), "true"),
		RawQuery:   r.URL.RawQuery,
		HasBody:    r.ContentLength > 0,
	})
	status, delay, lineEnd := s.status, s.delay, s.lineEnd
	body := s.ranges[strings.ToUpper(prefix)]
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	if len(prefix) != models.PrefixLength || !models.IsHex(prefix) {
		http.Error(w, "The hash prefix was not in a valid format", http.StatusBadRequest)
		return
	}

	if strings.EqualFold(r.Header.Get("Add-Padding"), "true") {
		body = pad(body, lineEnd)
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func pad(body, lineEnd string) string {
	lines := make([]string, 0, paddingEntries+1)
	if body != "" {
		lines = append(lines, body)
	}
	for i := 0; i < paddingEntries; i++ {
		lines = append(lines, fmt.Sprintf("%035X:0", i+1))
	}
	return strings.Join(lines, lineEnd)
}
