package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hfhsieh/sparx-alpha/pkg/common/errcode"
	"github.com/hfhsieh/sparx-alpha/pkg/utils/ginx"
	"github.com/hfhsieh/sparx-alpha/pkg/version"
)

// Healthz 健康检查
func Healthz(c *gin.Context) {
	ginx.SetResp(c, http.StatusOK, gin.H{"status": "ok", "version": version.Version})
}

// NotFound 未匹配到路由
func NotFound(c *gin.Context) {
	ginx.SetErrResp(c, http.StatusNotFound, errcode.Unknown, "route not found: "+c.Request.URL.Path)
}
