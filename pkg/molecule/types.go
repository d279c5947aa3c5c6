// Package molecule builds an immutable molecular data model from a parsed
// LAMDA document and answers the derived-physics queries used by the
// radiative-transfer solver.
//
// All quantities are stored in SI units: energies in J, frequencies in Hz,
// Einstein A in s^-1, Einstein B in Inu^-1 s^-1 and collisional rate
// coefficients in m^3 s^-1. A Molecule is never modified after Build returns
// and may be shared by any number of goroutines.
package molecule

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/interp"
)

// 碰撞伙伴编号 1..6 对应的物种
var partnerSpecies = [...]string{"H2", "p-H2", "o-H2", "e", "H", "He"}

// PartnerSpecies 返回碰撞伙伴编号对应的物种名
func PartnerSpecies(id int) (string, bool) {
	if id < 1 || id > len(partnerSpecies) {
		return "", false
	}
	return partnerSpecies[id-1], true
}

// Level 能级
type Level struct {
	Index int `json:"index"`
	// Energy 能量 J
	Energy float64 `json:"energy"`
	// Weight 统计权重
	Weight float64 `json:"weight"`
	// State 量子态标签
	State string `json:"state"`
}

// Line 辐射跃迁
type Line struct {
	Index int `json:"index"`
	Upper int `json:"upper"`
	Lower int `json:"lower"`
	// Freq 由上下能级能量差重新计算的频率 Hz
	Freq float64 `json:"freq"`
	// Aul 自发辐射系数 s^-1
	Aul float64 `json:"aul"`
	// Bul, Blu 受激辐射 / 吸收系数 Inu^-1 s^-1
	Bul float64 `json:"bul"`
	Blu float64 `json:"blu"`
}

// CollisionalTransition 碰撞跃迁
type CollisionalTransition struct {
	Index int
	Upper int
	Lower int

	// 各采样温度下的向下速率 m^3 s^-1
	kul []float64
	// 采样温度多于一个时预先拟合，查询时不再分配内存
	pl *interp.PiecewiseLinear
}

// Kul 返回各采样温度下的向下速率（m^3 s^-1）副本
func (t CollisionalTransition) Kul() []float64 {
	return append([]float64(nil), t.kul...)
}

// CollisionPartner 碰撞伙伴及其速率表，由 Molecule 独占
type CollisionPartner struct {
	id      int
	species string
	ref     string
	temps   []float64
	trans   []CollisionalTransition
}

// ID 碰撞伙伴编号（1..6）
func (p *CollisionPartner) ID() int { return p.id }

// Species 碰撞伙伴物种名
func (p *CollisionPartner) Species() string { return p.species }

// Ref 参考文献
func (p *CollisionPartner) Ref() string { return p.ref }

// Temps 采样温度（K）副本
func (p *CollisionPartner) Temps() []float64 { return append([]float64(nil), p.temps...) }

// NumTrans 碰撞跃迁数量
func (p *CollisionPartner) NumTrans() int { return len(p.trans) }

// Trans 返回第 i 个碰撞跃迁
func (p *CollisionPartner) Trans(i int) (CollisionalTransition, error) {
	if err := checkIndex("collisional transition", i, len(p.trans)); err != nil {
		return CollisionalTransition{}, err
	}
	return p.trans[i], nil
}

// Molecule 分子数据模型，构建后只读
type Molecule struct {
	name     string
	chemName string
	// 分子量 amu
	weight float64
	// 分子质量 kg
	mass     float64
	qstate   string
	levels   []Level
	lines    []Line
	partners []*CollisionPartner
	minFreq  float64
}

// Name 物种名（注册表中的名称，直接从路径加载时同 ChemName）
func (m *Molecule) Name() string { return m.name }

// ChemName 数据文件中的分子名称
func (m *Molecule) ChemName() string { return m.chemName }

// Weight 分子量 amu
func (m *Molecule) Weight() float64 { return m.weight }

// Mass 分子质量 kg
func (m *Molecule) Mass() float64 { return m.mass }

// QState 量子态标签名
func (m *Molecule) QState() string { return m.qstate }

// MinFreq 所有谱线中的最低频率（Hz），没有谱线时为 0
func (m *Molecule) MinFreq() float64 { return m.minFreq }

// NumLevels ...
func (m *Molecule) NumLevels() int { return len(m.levels) }

// NumLines ...
func (m *Molecule) NumLines() int { return len(m.lines) }

// NumPartners ...
func (m *Molecule) NumPartners() int { return len(m.partners) }

// Levels 返回全部能级的副本
func (m *Molecule) Levels() []Level { return append([]Level(nil), m.levels...) }

// Lines 返回全部谱线的副本
func (m *Molecule) Lines() []Line { return append([]Line(nil), m.lines...) }

// Partners 返回全部碰撞伙伴
func (m *Molecule) Partners() []*CollisionPartner {
	return append([]*CollisionPartner(nil), m.partners...)
}

// Level 返回第 i 个能级
func (m *Molecule) Level(i int) (Level, error) {
	if err := checkIndex("level", i, len(m.levels)); err != nil {
		return Level{}, err
	}
	return m.levels[i], nil
}

// Line 返回第 i 条谱线
func (m *Molecule) Line(i int) (Line, error) {
	if err := checkIndex("line", i, len(m.lines)); err != nil {
		return Line{}, err
	}
	return m.lines[i], nil
}

// LineFreq 第 i 条谱线的频率 Hz
func (m *Molecule) LineFreq(i int) (float64, error) {
	line, err := m.Line(i)
	return line.Freq, err
}

// LineAul 第 i 条谱线的爱因斯坦 A 系数
func (m *Molecule) LineAul(i int) (float64, error) {
	line, err := m.Line(i)
	return line.Aul, err
}

// LineBul 第 i 条谱线的受激辐射系数
func (m *Molecule) LineBul(i int) (float64, error) {
	line, err := m.Line(i)
	return line.Bul, err
}

// LineBlu 第 i 条谱线的吸收系数
func (m *Molecule) LineBlu(i int) (float64, error) {
	line, err := m.Line(i)
	return line.Blu, err
}

// Partner 返回第 i 个碰撞伙伴
func (m *Molecule) Partner(i int) (*CollisionPartner, error) {
	if err := checkIndex("collision partner", i, len(m.partners)); err != nil {
		return nil, err
	}
	return m.partners[i], nil
}

// PartnerBySpecies 按物种名查找碰撞伙伴（如 "p-H2"）
func (m *Molecule) PartnerBySpecies(species string) (*CollisionPartner, bool) {
	return lo.Find(m.partners, func(p *CollisionPartner) bool {
		return p.species == species
	})
}
