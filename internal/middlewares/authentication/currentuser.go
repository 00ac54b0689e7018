package authentication

import (
	"context"

	"github.com/google/uuid"
)

type CurrentUser struct {
	AccountId       uuid.UUID
	Subject         string
	Roles           []string
	IsAuthenticated bool
}

var currentUserContextKey = &CurrentUser{}

func ContextWithCurrentUser(ctx context.Context, user CurrentUser) context.Context {
	return context.WithValue(ctx, currentUserContextKey, user)
}

func GetCurrentUser(ctx context.Context) CurrentUser {
	value, ok := ctx.Value(currentUserContextKey).(CurrentUser)
	if !ok {
		panic("current user not found")
	}
	return value
}
