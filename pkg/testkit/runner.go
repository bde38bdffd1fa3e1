package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Session fires scenario steps against one handler and carries captured
// variables from step to step.
type Session struct {
	handler http.Handler
	vars    map[string]string
}

func NewSession(handler http.Handler) *Session {
	return &Session{handler: handler, vars: make(map[string]string)}
}

func (s *Session) Set(name, value string) { s.vars[name] = value }

func (s *Session) Var(name string) string { return s.vars[name] }

// Run executes steps in order as subtests. A failed step stops the rest,
// since later steps usually depend on its captures.
func (s *Session) Run(t *testing.T, steps []*Scenario) {
	t.Helper()
	for _, step := range steps {
		if !t.Run(step.Name, func(t *testing.T) { s.step(t, step) }) {
			return
		}
	}
}

// RunFile loads one scenario file and runs it on s.
func (s *Session) RunFile(t *testing.T, path string) {
	t.Helper()
	steps, err := LoadScenarios(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Run(t, steps)
}

// RunDir runs every *.json file in dir as its own subtest, each against a
// fresh handler from newHandler.
func RunDir(t *testing.T, newHandler func(t *testing.T) http.Handler, dir string) {
	t.Helper()

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil || len(paths) == 0 {
		t.Fatalf("testkit: no scenario files found in %q", dir)
	}

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".json")
		t.Run(name, func(t *testing.T) {
			NewSession(newHandler(t)).RunFile(t, path)
		})
	}
}

func (s *Session) step(t *testing.T, sc *Scenario) {
	t.Helper()

	body, err := s.requestBody(sc)
	if err != nil {
		t.Fatalf("[%s] %v", sc.Name, err)
	}

	req := httptest.NewRequest(strings.ToUpper(sc.RequestMethod), s.expand(sc.RequestURL), body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range sc.Headers {
		req.Header.Set(k, s.expand(v))
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	AssertStatusCode(t, sc, rec.Code, rec.Body.Bytes())

	expected, err := s.expectedBody(sc)
	if err != nil {
		t.Fatalf("[%s] %v", sc.Name, err)
	}
	AssertJSONSubset(t, sc, expected, rec.Body.Bytes())

	s.capture(t, sc, rec.Body.Bytes())
}

func (s *Session) requestBody(sc *Scenario) (io.Reader, error) {
	raw := []byte(sc.RequestBody)
	if p := sc.RequestBodyPath(); p != "" {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read request file %q: %w", p, err)
		}
		raw = data
	}
	if len(raw) == 0 {
		return http.NoBody, nil
	}
	return strings.NewReader(s.expand(string(raw))), nil
}

func (s *Session) expectedBody(sc *Scenario) ([]byte, error) {
	raw := []byte(sc.ExpectedBody)
	if p := sc.ResponseBodyPath(); p != "" {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read response file %q: %w", p, err)
		}
		raw = data
	}
	return []byte(s.expand(string(raw))), nil
}

func (s *Session) capture(t *testing.T, sc *Scenario, body []byte) {
	t.Helper()
	if len(sc.Capture) == 0 {
		return
	}

	var doc any
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&doc); err != nil {
		t.Fatalf("[%s] capture: response is not JSON: %v", sc.Name, err)
	}
	for name, path := range sc.Capture {
		v, ok := Lookup(doc, path)
		if !ok {
			t.Fatalf("[%s] capture %q: path %q not in response", sc.Name, name, path)
		}
		s.vars[name] = fmt.Sprint(v)
	}
}

// expand replaces {{name}} with captured variables. Unknown names are left
// in place so the mismatch shows up in the assertion output.
func (s *Session) expand(in string) string {
	if !strings.Contains(in, "{{") {
		return in
	}
	for name, v := range s.vars {
		in = strings.ReplaceAll(in, "{{"+name+"}}", v)
	}
	return in
}
