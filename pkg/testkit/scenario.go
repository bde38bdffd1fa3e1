// Package testkit drives REST API tests from JSON scenario files.
//
// A scenario file holds an ordered array of steps. Each step describes the
// request to fire, the expected status code and a JSON subset the response
// body must contain. Values captured from one response can be referenced by
// later steps as {{name}}:
//
//	[
//	  {
//	    "name": "host signs in",
//	    "requestMethod": "POST",
//	    "requestUrl": "/admin/signin",
//	    "requestBody": {"fullname": "Anita", "email": "a@x.com", "password": "secret1"},
//	    "expectedCode": 201,
//	    "capture": {"hostToken": "token"}
//	  },
//	  {
//	    "name": "host lists nothing yet",
//	    "requestUrl": "/hosting/all",
//	    "headers": {"Authorization": "Bearer {{hostToken}}"},
//	    "expectedCode": 200,
//	    "expectedBody": []
//	  }
//	]
//
// Example _test.go:
//
//	func TestAPI(t *testing.T) {
//	    testkit.RunDir(t, newHandler, "testdata")
//	}
package testkit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Scenario is a single step of a scenario file.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	RequestMethod   string            `json:"requestMethod"`   // defaults to GET
	RequestURL      string            `json:"requestUrl"`      // may reference {{vars}}
	RequestBody     json.RawMessage   `json:"requestBody"`     // inline JSON body
	RequestFileName string            `json:"requestFileName"` // body file, relative to the scenario file
	Headers         map[string]string `json:"headers"`

	ExpectedCode     int             `json:"expectedCode"`
	ExpectedBody     json.RawMessage `json:"expectedBody"`     // JSON subset; "*" matches any value
	ResponseFileName string          `json:"responseFileName"` // same as ExpectedBody, from a file

	// Capture maps a variable name to a dotted path in the response body,
	// e.g. {"hostingId": "hosting.id"}.
	Capture map[string]string `json:"capture"`

	dir string
}

func (s *Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.RequestURL == "" {
		return fmt.Errorf("requestUrl is required")
	}
	if s.ExpectedCode == 0 {
		return fmt.Errorf("expectedCode is required")
	}
	if s.RequestMethod == "" {
		s.RequestMethod = "GET"
	}
	if len(s.RequestBody) > 0 && s.RequestFileName != "" {
		return fmt.Errorf("requestBody and requestFileName are mutually exclusive")
	}
	return nil
}

// RequestBodyPath returns the absolute path to the request body file, or "".
func (s *Scenario) RequestBodyPath() string {
	return s.resolve(s.RequestFileName)
}

// ResponseBodyPath returns the absolute path to the expected response file, or "".
func (s *Scenario) ResponseBodyPath() string {
	return s.resolve(s.ResponseFileName)
}

func (s *Scenario) resolve(name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}

// LoadScenarios reads and validates the ordered steps of one scenario file.
func LoadScenarios(path string) ([]*Scenario, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("testkit: resolve path %q: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("testkit: read %q: %w", abs, err)
	}

	var steps []*Scenario
	if err := json.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("testkit: parse %q: %w", abs, err)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("testkit: %q has no steps", abs)
	}

	dir := filepath.Dir(abs)
	for i, s := range steps {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("testkit: %q step %d: %w", abs, i, err)
		}
		s.dir = dir
	}
	return steps, nil
}
