package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/hfhsieh/sparx-alpha/pkg/utils/ginx"
	"github.com/hfhsieh/sparx-alpha/pkg/utils/uuid"
)

// RequestID 沿用调用方传入的 32 位请求 ID，否则生成新的
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(ginx.RequestIDHeaderKey)

		if len(requestID) != uuid.HexLen {
			requestID = uuid.GenUUID4()
		}
		ginx.SetRequestID(c, requestID)
		c.Writer.Header().Set(ginx.RequestIDHeaderKey, requestID)

		c.Next()
	}
}
