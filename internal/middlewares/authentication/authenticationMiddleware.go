package authentication

import (
	"net/http"

	"github.com/The127/ioc"
	"github.com/The127/mediatr"
	"github.com/gorilla/mux"
	"github.com/tokengate-project/tokengate/internal/middlewares"
	"github.com/tokengate-project/tokengate/internal/queries"
	"github.com/tokengate-project/tokengate/internal/utils/apiError"
)

// ApiAuthenticationMiddleware resolves the bearer token of a request and
// authenticates it. Requests without a token proceed with an anonymous
// current user; malformed or ambiguous token presentations are rejected
// before any verification runs.
func ApiAuthenticationMiddleware(converter *Converter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenRequest, err := converter.Convert(r)
			if err != nil {
				apiError.HandleUnauthorized(w, "invalid_request", err)
				return
			}

			currentUser := CurrentUser{
				Roles: []string{},
			}

			if tokenRequest != nil {
				ctx := r.Context()
				scope := middlewares.GetScope(ctx)
				mediator := ioc.GetDependency[mediatr.Mediator](scope)

				response, err := mediatr.Send[*queries.AuthenticateTokenResponse](ctx, mediator, queries.AuthenticateToken{
					Token: tokenRequest.GetToken(),
				})
				if err != nil {
					apiError.HandleHttpError(w, err)
					return
				}

				currentUser = CurrentUser{
					AccountId:       response.AccountId,
					Subject:         response.Subject,
					Roles:           response.Roles,
					IsAuthenticated: true,
				}
			}

			ctx := ContextWithCurrentUser(r.Context(), currentUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
