package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/healthmoney/healthmoney/internal/types"
)

func RequestIDMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ctx = context.WithValue(ctx, types.CtxRequestID, requestID)
	c.Request = c.Request.WithContext(ctx)

	c.Header(types.HeaderRequestID, requestID)

	c.Next()
}

// SessionTokenMiddleware extracts the session-supplied OAuth bearer
// token into the request context. Routes that require it fail with a
// descriptive denial when it is absent.
func SessionTokenMiddleware(c *gin.Context) {
	authorization := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authorization, "Bearer "); ok && token != "" {
		ctx := context.WithValue(c.Request.Context(), types.CtxAccessToken, token)
		c.Request = c.Request.WithContext(ctx)
	}

	c.Next()
}
