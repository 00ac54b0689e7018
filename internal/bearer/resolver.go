package bearer

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
)

const (
	// AccessTokenParameter is the query and form parameter name defined by
	// RFC 6750 sections 2.2 and 2.3.
	AccessTokenParameter = "access_token"

	bearerPrefix       = "Bearer "
	formUrlencodedType = "application/x-www-form-urlencoded"
)

// tokenPattern is the RFC 6750 b64token character class extended with the
// separators commonly found in JWTs, with optional trailing padding.
var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9\-._~+/]+=*$`)

var (
	ErrTokenMalformed = errors.New("Bearer token is malformed")
	ErrMultipleTokens = errors.New("Found multiple bearer tokens in the request")
)

// Resolver locates a bearer token among the places a request may legally carry
// one: the configured header, the access_token query parameter and the
// access_token form body parameter. Configuration must not change after the
// first call to Resolve; a configured resolver is safe for concurrent use.
type Resolver struct {
	headerName                    string
	allowUriQueryParameter        bool
	allowFormEncodedBodyParameter bool
}

func NewResolver() *Resolver {
	return &Resolver{
		headerName: "Authorization",
	}
}

// SetHeaderName overrides the header the resolver reads bearer tokens from.
func (r *Resolver) SetHeaderName(name string) {
	if name == "" {
		panic("bearer: header name must not be empty")
	}
	r.headerName = name
}

// SetAllowUriQueryParameter enables resolving tokens from the access_token
// query parameter on GET requests.
func (r *Resolver) SetAllowUriQueryParameter(allow bool) {
	r.allowUriQueryParameter = allow
}

// SetAllowFormEncodedBodyParameter enables resolving tokens from the
// access_token form parameter on POST requests with a form-urlencoded body.
func (r *Resolver) SetAllowFormEncodedBodyParameter(allow bool) {
	r.allowFormEncodedBodyParameter = allow
}

// Resolve returns the bearer token carried by the request, or "" if none is
// present. A request that carries a syntactically invalid token returns
// ErrTokenMalformed. A request that presents tokens through more than one
// source at once returns ErrMultipleTokens, even if one of them is invalid:
// an ambiguous presentation is never resolved by silently picking a side.
func (r *Resolver) Resolve(req Request) (string, error) {
	headerToken, headerErr := r.resolveFromHeader(req)
	queryToken := r.resolveFromQuery(req)
	formToken := r.resolveFromForm(req)

	candidates := 0
	if headerToken != "" || headerErr != nil {
		candidates++
	}
	if queryToken != "" {
		candidates++
	}
	if formToken != "" {
		candidates++
	}

	if candidates > 1 {
		return "", ErrMultipleTokens
	}

	if headerErr != nil {
		return "", headerErr
	}

	if headerToken != "" {
		return headerToken, nil
	}

	if queryToken != "" {
		return queryToken, nil
	}

	return formToken, nil
}

// resolveFromHeader inspects the configured header. Values that do not start
// with the exact "Bearer " scheme are ignored rather than rejected, because
// other authentication schemes legitimately share the same header.
func (r *Resolver) resolveFromHeader(req Request) (string, error) {
	var candidates []string
	for _, value := range req.HeaderValues(r.headerName) {
		if !strings.HasPrefix(value, bearerPrefix) {
			continue
		}
		candidates = append(candidates, strings.TrimPrefix(value, bearerPrefix))
	}

	if len(candidates) == 0 {
		return "", nil
	}

	if len(candidates) > 1 {
		return "", ErrMultipleTokens
	}

	token := candidates[0]
	if !tokenPattern.MatchString(token) {
		return "", ErrTokenMalformed
	}

	return token, nil
}

func (r *Resolver) resolveFromQuery(req Request) string {
	if !r.allowUriQueryParameter || req.Method() != http.MethodGet {
		return ""
	}

	return req.QueryParameter(AccessTokenParameter)
}

func (r *Resolver) resolveFromForm(req Request) string {
	if !r.allowFormEncodedBodyParameter || req.Method() != http.MethodPost {
		return ""
	}

	if MediaType(req.ContentType()) != formUrlencodedType {
		return ""
	}

	return req.FormParameter(AccessTokenParameter)
}
