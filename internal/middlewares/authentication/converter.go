package authentication

import (
	"net/http"

	"github.com/tokengate-project/tokengate/internal/bearer"
)

// TokenAuthenticationRequest carries a resolved but not yet verified bearer
// token into the authentication pipeline.
type TokenAuthenticationRequest struct {
	token string
}

func NewTokenAuthenticationRequest(token string) *TokenAuthenticationRequest {
	return &TokenAuthenticationRequest{
		token: token,
	}
}

func (r *TokenAuthenticationRequest) GetToken() string {
	return r.token
}

// Converter turns an incoming request into an authentication request. A
// request without any bearer token yields (nil, nil) so that the chain can
// proceed unauthenticated; a malformed or ambiguous presentation yields the
// resolver's error unchanged.
type Converter struct {
	resolver *bearer.Resolver
}

func NewConverter(resolver *bearer.Resolver) *Converter {
	return &Converter{
		resolver: resolver,
	}
}

func (c *Converter) Convert(r *http.Request) (*TokenAuthenticationRequest, error) {
	token, err := c.resolver.Resolve(bearer.FromHttpRequest(r))
	if err != nil {
		return nil, err
	}

	if token == "" {
		return nil, nil
	}

	return NewTokenAuthenticationRequest(token), nil
}
