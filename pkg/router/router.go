package router

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/hfhsieh/sparx-alpha/pkg/envs"
	"github.com/hfhsieh/sparx-alpha/pkg/handler"
	"github.com/hfhsieh/sparx-alpha/pkg/middleware"
	"github.com/hfhsieh/sparx-alpha/pkg/storage"
)

// New 构建查询 API 路由
func New(catalog *storage.Catalog) *gin.Engine {
	gin.SetMode(envs.GinRunMode)
	router := gin.New()
	_ = router.SetTrustedProxies(nil)

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Cors(envs.CorsAllowOrigins))
	router.Use(gin.Recovery())

	// 404
	router.NoRoute(handler.NotFound)
	// 健康检查
	router.GET("healthz", handler.Healthz)

	// api 路由
	{
		h := handler.NewMoleculeHandler(catalog)
		apiRg := router.Group("apis")
		// 物种列表
		apiRg.GET("molecules", h.ListMolecules)

		molRg := apiRg.Group("molecules/:name")
		// 分子概要
		molRg.GET("", h.RetrieveMolecule)
		// 能级（可选 LTE 布居）
		molRg.GET("levels", h.ListLevels)
		// 谱线列表
		molRg.GET("lines", h.ListLines)
		// 谱线详情
		molRg.GET("lines/:line", h.RetrieveLine)
		// 碰撞速率
		molRg.GET("partners/:partner/rates/:trans", h.GetRates)
		// 临界密度
		molRg.GET("partners/:partner/critdens/:line", h.GetCritDens)
		// 文本格式数据
		molRg.GET("dump", h.Dump)
	}

	return router
}

// Run 启动查询 API 服务，阻塞直到服务退出
func Run(catalog *storage.Catalog) {
	if err := New(catalog).Run(":" + envs.ServerPort); err != nil {
		panic(fmt.Sprintf("failed to start server: %s", err.Error()))
	}
}
