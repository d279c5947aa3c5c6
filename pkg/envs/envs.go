package envs

import (
	"path/filepath"

	"github.com/hfhsieh/sparx-alpha/pkg/common/runmode"
	"github.com/hfhsieh/sparx-alpha/pkg/utils/envx"
	"github.com/hfhsieh/sparx-alpha/pkg/utils/pathx"
)

// 以下变量值可通过环境变量指定
var (
	// MolecDataDir 分子数据文件（*.dat）存放目录
	MolecDataDir = envx.Get("MOLEC_DATA_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../data/molec"))

	// PreloadSpecies 服务启动时预加载的物种，逗号分隔
	PreloadSpecies = envx.GetList("PRELOAD_SPECIES", nil)

	// DefaultKineticTemp 命令行未指定温度时使用的动力学温度（K）
	DefaultKineticTemp = envx.GetFloat("DEFAULT_KINETIC_TEMP", 20)

	// ServerPort web 服务启用端口
	ServerPort = envx.Get("SERVER_PORT", "8080")

	// GinRunMode web 服务运行模式
	GinRunMode = envx.Get("GIN_RUN_MODE", runmode.Release)

	// CorsAllowOrigins 允许跨域访问的来源，逗号分隔，* 表示全部
	CorsAllowOrigins = envx.GetList("CORS_ALLOW_ORIGINS", []string{"*"})

	// LogFileBaseDir 日志存放目录
	LogFileBaseDir = envx.Get("LOG_FILE_BASE_DIR", filepath.Join(pathx.GetCurPKGPath(), "../../logs"))

	// LogLevel 日志等级（panic/fatal/error/warn/info/debug/trace）
	LogLevel = envx.Get("LOG_LEVEL", "info")
)
