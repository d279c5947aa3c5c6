package version

import (
	"fmt"
	"runtime"
)

// 以下变量值可通过 --ldflags 的方式修改
var (
	Version   = "0.1.0"
	GitCommit = "--"
	BuildTime = "--"
	GoVersion = runtime.Version()
)

// GetVersion 版本信息
func GetVersion() string {
	return fmt.Sprintf("Version: %s, GitCommit: %s, BuildTime: %s, GoVersion: %s",
		Version, GitCommit, BuildTime, GoVersion)
}
