package runtime

import (
	"github.com/hfhsieh/sparx-alpha/pkg/common/runmode"
)

// 以下变量值可通过 --ldflags 的方式修改
var (
	// RunMode 运行模式，可选值为 release，test，debug
	RunMode = runmode.Release
)

// IsDebug 是否以调试模式运行
func IsDebug() bool {
	return RunMode == runmode.Debug
}
