package testkit_test

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/rentalease/pkg/testkit"
)

// itemsHandler stores one item and serves it back by id.
func itemsHandler(t *testing.T) http.Handler {
	items := map[string]string{}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/items":
			var in struct {
				Name string `json:"name"`
			}
			_ = json.NewDecoder(r.Body).Decode(&in)
			items["i-1"] = in.Name
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"id": "i-1", "name": in.Name})
		case strings.HasPrefix(r.URL.Path, "/items/"):
			id := strings.TrimPrefix(r.URL.Path, "/items/")
			name, ok := items[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(`{"error":"not found"}`))
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"id": id, "name": name})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func TestRunDir(t *testing.T) {
	testkit.RunDir(t, itemsHandler, "testdata")
}

func TestSessionCapturesVariables(t *testing.T) {
	s := testkit.NewSession(itemsHandler(t))
	s.RunFile(t, "testdata/echo.json")
	assert.Equal(t, "i-1", s.Var("itemId"))
}

func TestLoadScenariosRejectsIncompleteStep(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/bad.json"
	require.NoError(t, writeFile(path, `[{"name":"no url","expectedCode":200}]`))

	_, err := testkit.LoadScenarios(path)
	assert.ErrorContains(t, err, "requestUrl is required")
}

func TestDiffJSONSubsetAndWildcard(t *testing.T) {
	var exp, act any
	require.NoError(t, json.Unmarshal([]byte(`{"id":"*","price":500,"tags":["a"]}`), &exp))
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","price":500,"tags":["a"],"extra":true}`), &act))
	assert.Empty(t, testkit.DiffJSON("", exp, act))

	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","price":400,"tags":[]}`), &act))
	diffs := testkit.DiffJSON("", exp, act)
	assert.Len(t, diffs, 2)
}

func TestLookup(t *testing.T) {
	var doc any
	require.NoError(t, json.Unmarshal([]byte(`{"booking":{"id":"b1"},"items":[{"id":"i0"}]}`), &doc))

	v, ok := testkit.Lookup(doc, "booking.id")
	require.True(t, ok)
	assert.Equal(t, "b1", v)

	v, ok = testkit.Lookup(doc, "items.0.id")
	require.True(t, ok)
	assert.Equal(t, "i0", v)

	_, ok = testkit.Lookup(doc, "items.3.id")
	assert.False(t, ok)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
