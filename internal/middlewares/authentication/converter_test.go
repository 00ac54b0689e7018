package authentication

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/tokengate-project/tokengate/internal/bearer"
)

type ConverterTestSuite struct {
	suite.Suite
}

func TestConverterTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ConverterTestSuite))
}

func (s *ConverterTestSuite) TestAuthorizationHeader() {
	// arrange
	converter := NewConverter(bearer.NewResolver())
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer test_bearer_token")

	// act
	tokenRequest, err := converter.Convert(request)

	// assert
	s.NoError(err)
	s.NotNil(tokenRequest)
	s.Equal("test_bearer_token", tokenRequest.GetToken())
}

func (s *ConverterTestSuite) TestQueryParameter() {
	// arrange
	resolver := bearer.NewResolver()
	resolver.SetAllowUriQueryParameter(true)
	converter := NewConverter(resolver)
	request := httptest.NewRequest(http.MethodGet, "/?access_token=test_bearer_token", nil)

	// act
	tokenRequest, err := converter.Convert(request)

	// assert
	s.NoError(err)
	s.NotNil(tokenRequest)
	s.Equal("test_bearer_token", tokenRequest.GetToken())
}

func (s *ConverterTestSuite) TestNoToken() {
	// arrange
	converter := NewConverter(bearer.NewResolver())
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	// act
	tokenRequest, err := converter.Convert(request)

	// assert
	s.NoError(err)
	s.Nil(tokenRequest)
}

func (s *ConverterTestSuite) TestMultipleTokens() {
	// arrange
	resolver := bearer.NewResolver()
	resolver.SetAllowUriQueryParameter(true)
	converter := NewConverter(resolver)
	request := httptest.NewRequest(http.MethodGet, "/?access_token=test_bearer_token", nil)
	request.Header.Set("Authorization", "Bearer test_bearer_token")

	// act
	tokenRequest, err := converter.Convert(request)

	// assert
	s.Nil(tokenRequest)
	s.EqualError(err, "Found multiple bearer tokens in the request")
}

func (s *ConverterTestSuite) TestMalformedToken() {
	// arrange
	converter := NewConverter(bearer.NewResolver())
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Authorization", "Bearer ")

	// act
	tokenRequest, err := converter.Convert(request)

	// assert
	s.Nil(tokenRequest)
	s.EqualError(err, "Bearer token is malformed")
}

func (s *ConverterTestSuite) TestCustomHeaderName() {
	// arrange
	resolver := bearer.NewResolver()
	resolver.SetHeaderName("X-Auth-Token")
	converter := NewConverter(resolver)
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Auth-Token", "Bearer test-x-auth-token")

	// act
	tokenRequest, err := converter.Convert(request)

	// assert
	s.NoError(err)
	s.NotNil(tokenRequest)
	s.Equal("test-x-auth-token", tokenRequest.GetToken())
}
