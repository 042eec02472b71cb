package testutil

import (
	"context"

	"github.com/healthmoney/healthmoney/internal/types"
)

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxRequestID, types.GenerateUUID())
	return ctx
}

// SetupContextWithToken builds a request context carrying a session
// access token, as the auth middleware would.
func SetupContextWithToken(token string) context.Context {
	return context.WithValue(SetupContext(), types.CtxAccessToken, token)
}
