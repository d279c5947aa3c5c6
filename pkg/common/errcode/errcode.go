package errcode

const (
	// NoErr 无错误
	NoErr = 0

	// InvalidParam 请求参数不合法（温度、速度等无法解析）
	InvalidParam = 40001
	// IndexOutOfRange 能级、谱线、碰撞跃迁或碰撞伙伴编号越界
	IndexOutOfRange = 40002

	// UnknownSpecies 注册表中没有该物种
	UnknownSpecies = 40401
	// NoMatchingTransition 谱线在碰撞伙伴速率表中没有对应跃迁
	NoMatchingTransition = 40402
	// UnknownPartner 分子中没有该碰撞伙伴
	UnknownPartner = 40403

	// Unknown 未知错误
	Unknown = 50001
	// MalformedData 分子数据文件格式错误
	MalformedData = 50002
)
