package bearer

import (
	"net/http"
	"strings"
)

// Request is the view of an incoming request the resolver needs. It keeps the
// resolver testable without a running server and independent of how the
// transport parsed the request.
type Request interface {
	Method() string
	ContentType() string
	HeaderValues(name string) []string
	QueryParameter(name string) string
	FormParameter(name string) string
}

type httpRequest struct {
	r *http.Request
}

// FromHttpRequest adapts a *http.Request to the resolver's request view.
func FromHttpRequest(r *http.Request) Request {
	return &httpRequest{r: r}
}

func (h *httpRequest) Method() string {
	return h.r.Method
}

func (h *httpRequest) ContentType() string {
	return h.r.Header.Get("Content-Type")
}

func (h *httpRequest) HeaderValues(name string) []string {
	return h.r.Header.Values(name)
}

func (h *httpRequest) QueryParameter(name string) string {
	return h.r.URL.Query().Get(name)
}

func (h *httpRequest) FormParameter(name string) string {
	return h.r.PostFormValue(name)
}

// MediaType strips any parameters (e.g. "; charset=utf-8") from a content type
// header value and normalizes it for comparison.
func MediaType(contentType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
}
