package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/hfhsieh/sparx-alpha/pkg/utils/ginx"
)

// Cors 跨域配置，allowOrigins 包含 * 时允许全部来源
func Cors(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", ginx.RequestIDHeaderKey},
		ExposeHeaders: []string{ginx.RequestIDHeaderKey},
		MaxAge:        12 * time.Hour,
	}
	if len(allowOrigins) == 0 || lo.Contains(allowOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	return cors.New(cfg)
}
