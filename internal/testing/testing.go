// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"testing"
)

// MockRoundTripper allows custom HTTP responses for testing. Responses
// are returned in order; the last one repeats once the script runs out.
type MockRoundTripper struct {
	responses []*http.Response
	errs      []error
	Calls     int
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{responses: []*http.Response{r}, errs: []error{e}}
}

// NewScriptedRoundTripper returns each response/error pair in sequence.
// Both slices must have the same length.
func NewScriptedRoundTripper(responses []*http.Response, errs []error) *MockRoundTripper {
	return &MockRoundTripper{responses: responses, errs: errs}
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	i := m.Calls
	if i >= len(m.responses) {
		i = len(m.responses) - 1
	}
	m.Calls++

	resp, err := m.responses[i], m.errs[i]
	if resp != nil {
		resp.Request = req
		// rewindable body so the same scripted response can repeat
		if b, ok := resp.Body.(*replayBody); ok {
			resp.Body = &replayBody{data: b.data}
		}
	}
	return resp, err
}

// JSONResponse builds an *http.Response carrying a JSON body.
func JSONResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     strconv.Itoa(status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       &replayBody{data: []byte(body)},
	}
}

type replayBody struct {
	data []byte
	r    *bytes.Reader
}

func (b *replayBody) Read(p []byte) (int, error) {
	if b.r == nil {
		b.r = bytes.NewReader(b.data)
	}
	return b.r.Read(p)
}

func (b *replayBody) Close() error { return nil }

// FCloser simulates a failure when reading a response body.
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error { return nil }

// FWriter always returns an error on Write.
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// Discard is an io.Writer for silencing loggers in tests.
var Discard io.Writer = io.Discard

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
