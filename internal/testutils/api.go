package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/nfrund/learnhub/internal/apiclient"
)

// Call is a request received by a FakeAPI.
type Call struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   []byte
}

type reply struct {
	status int
	body   []byte
}

// FakeAPI stands in for the backend REST API. Unregistered routes answer
// 404 with a JSON message.
type FakeAPI struct {
	*httptest.Server

	mu     sync.Mutex
	routes map[string]reply
	calls  []Call
}

func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{routes: make(map[string]reply)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

// Handle registers the answer for method and path. Strings are sent as is,
// anything else is JSON encoded.
func (f *FakeAPI) Handle(method, path string, status int, body any) {
	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	case []byte:
		raw = b
	default:
		raw, _ = json.Marshal(b)
	}
	f.mu.Lock()
	f.routes[method+" "+path] = reply{status: status, body: raw}
	f.mu.Unlock()
}

// Calls returns the requests received so far.
func (f *FakeAPI) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Called reports whether method and path were requested.
func (f *FakeAPI) Called(method, path string) bool {
	for _, c := range f.Calls() {
		if c.Method == method && c.Path == path {
			return true
		}
	}
	return false
}

// LastCall returns the most recent request to method and path.
func (f *FakeAPI) LastCall(method, path string) (Call, bool) {
	calls := f.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method == method && calls[i].Path == path {
			return calls[i], true
		}
	}
	return Call{}, false
}

// Client is an apiclient.Client aimed at the fake.
func (f *FakeAPI) Client() *apiclient.Client {
	return apiclient.New(f.URL, f.Server.Client())
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls = append(f.calls, Call{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Auth:   r.Header.Get("Authorization"),
		Body:   body,
	})
	rep, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"not found"}`)
		return
	}
	w.WriteHeader(rep.status)
	_, _ = w.Write(rep.body)
}
