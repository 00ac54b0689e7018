package apihandlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/The127/ioc"
	"github.com/The127/mediatr"
	"github.com/google/uuid"
	"github.com/tokengate-project/tokengate/internal/middlewares"
	"github.com/tokengate-project/tokengate/internal/middlewares/authentication"
	"github.com/tokengate-project/tokengate/internal/queries"
	"github.com/tokengate-project/tokengate/internal/utils/apiError"
)

type GetMeResponse struct {
	Id          uuid.UUID `json:"id"`
	Subject     string    `json:"subject"`
	DisplayName *string   `json:"displayName"`
	Email       *string   `json:"email"`
	Roles       []string  `json:"roles"`
	CreatedAt   time.Time `json:"createdAt"`
	LastSeenAt  time.Time `json:"lastSeenAt"`
}

func GetMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	currentUser := authentication.GetCurrentUser(ctx)

	if !currentUser.IsAuthenticated {
		apiError.HandleUnauthorized(w, "", nil)
		return
	}

	scope := middlewares.GetScope(ctx)
	mediator := ioc.GetDependency[mediatr.Mediator](scope)

	account, err := mediatr.Send[*queries.GetAccountResponse](ctx, mediator, queries.GetAccount{
		Id: currentUser.AccountId,
	})
	if err != nil {
		apiError.HandleHttpError(w, err)
		return
	}

	response := GetMeResponse{
		Id:          account.Id,
		Subject:     account.Subject,
		DisplayName: account.DisplayName,
		Email:       account.Email,
		Roles:       currentUser.Roles,
		CreatedAt:   account.CreatedAt,
		LastSeenAt:  account.LastSeenAt,
	}

	w.Header().Set("Content-Type", "application/json")

	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		apiError.HandleHttpError(w, err)
		return
	}
}
