// Package cont carries authenticated request data through the context.
package cont

import (
	"ShopBridge/entity"
	"context"
)

type contextKey string

const userKey contextKey = "auth-user"

func PutUser(ctx context.Context, user *entity.UserAuth) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func GetUser(ctx context.Context) *entity.UserAuth {
	user, ok := ctx.Value(userKey).(*entity.UserAuth)
	if !ok {
		return nil
	}
	return user
}
