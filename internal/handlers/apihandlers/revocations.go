package apihandlers

import (
	"net/http"

	"github.com/The127/ioc"
	"github.com/The127/mediatr"
	"github.com/tokengate-project/tokengate/internal/commands"
	"github.com/tokengate-project/tokengate/internal/middlewares"
	"github.com/tokengate-project/tokengate/internal/middlewares/authentication"
	"github.com/tokengate-project/tokengate/internal/utils/apiError"
	"github.com/tokengate-project/tokengate/internal/utils/decoding"
	"github.com/tokengate-project/tokengate/internal/utils/validate"
)

type RevokeTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

func RevokeToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	currentUser := authentication.GetCurrentUser(ctx)

	if !currentUser.IsAuthenticated {
		apiError.HandleUnauthorized(w, "", nil)
		return
	}

	var dto RevokeTokenRequest
	err := decoding.HttpBodyAsJson(w, r, &dto)
	if err != nil {
		apiError.HandleHttpError(w, err)
		return
	}

	err = validate.Validate(dto)
	if err != nil {
		apiError.HandleHttpError(w, err)
		return
	}

	scope := middlewares.GetScope(ctx)
	mediator := ioc.GetDependency[mediatr.Mediator](scope)

	_, err = mediatr.Send[*commands.RevokeTokenResponse](ctx, mediator, commands.RevokeToken{
		Token: dto.Token,
	})
	if err != nil {
		apiError.HandleHttpError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
