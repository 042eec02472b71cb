package types

import (
	"context"
)

// ContextKey is a type for the keys of values stored in the context
type ContextKey string

const (
	CtxRequestID   ContextKey = "ctx_request_id"
	CtxAccessToken ContextKey = "ctx_access_token"

	HeaderRequestID = "X-Request-ID"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(CtxRequestID).(string); ok {
		return requestID
	}
	return ""
}

// GetAccessToken returns the session-supplied OAuth access token, if any.
func GetAccessToken(ctx context.Context) string {
	if token, ok := ctx.Value(CtxAccessToken).(string); ok {
		return token
	}
	return ""
}
