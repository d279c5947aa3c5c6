package runmode

// 运行模式，与 gin 的模式名称保持一致
const (
	Debug   = "debug"
	Release = "release"
	Test    = "test"
)
