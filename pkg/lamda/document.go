// Package lamda reads LAMDA-style molecular data files into typed sections.
//
// The reader only checks layout: counts, column arity and numeric fields.
// Indices are kept 1-based as they appear in the file and no unit conversion
// is performed; see package molecule for the physical model.
package lamda

// 段落名称，用于错误信息
const (
	SectionSpecies        = "species"
	SectionWeight         = "molecular weight"
	SectionLevelCount     = "level count"
	SectionLevelTable     = "level table"
	SectionLineCount      = "line count"
	SectionLineTable      = "line table"
	SectionPartnerCount   = "partner count"
	SectionPartnerID      = "partner id"
	SectionTransCount     = "collisional transition count"
	SectionTempCount      = "temperature count"
	SectionTemps          = "temperatures"
	SectionCollisionTable = "collision table"
)

// LevelRow 能级表中的一行
type LevelRow struct {
	// Index 文件中的能级编号（从 1 开始）
	Index int
	// Energy 能量 cm^-1
	Energy float64
	// Weight 统计权重
	Weight float64
	// State 量子态标签
	State string
	// Line 所在行号
	Line int
}

// LineRow 辐射跃迁表中的一行
type LineRow struct {
	Index int
	// Upper, Lower 上下能级编号（从 1 开始）
	Upper int
	Lower int
	// Aul 爱因斯坦 A 系数 s^-1
	Aul  float64
	Line int
}

// TransRow 碰撞跃迁表中的一行
type TransRow struct {
	Index int
	Upper int
	Lower int
	// Rates 各温度下的向下碰撞速率 cm^3 s^-1
	Rates []float64
	Line  int
}

// PartnerBlock 一个碰撞伙伴的全部数据
type PartnerBlock struct {
	// ID 碰撞伙伴编号：1=H2, 2=para-H2, 3=ortho-H2, 4=e, 5=H, 6=He
	ID   int
	Ref  string
	Line int
	// Temps 采样温度 K
	Temps     []float64
	TempsLine int
	Trans     []TransRow
}

// Document 一个数据文件的全部段落
type Document struct {
	Species     string
	SpeciesLine int
	// Weight 分子量 amu
	Weight float64
	// QState 能级表头中的量子态标签名
	QState   string
	Levels   []LevelRow
	Lines    []LineRow
	Partners []PartnerBlock
}
