package molecule

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/hfhsieh/sparx-alpha/pkg/physics"
)

// PartitionFunc 配分函数 Z(T) = sum_i g_i * exp(-E_i / kT)
func (m *Molecule) PartitionFunc(tk float64) float64 {
	z := 0.0
	for _, lev := range m.levels {
		z += lev.Weight * math.Exp(-lev.Energy/(physics.K*tk))
	}
	return z
}

// BoltzmannLevels 温度 tk 下的玻尔兹曼能级布居，各项之和为 1
func (m *Molecule) BoltzmannLevels(tk float64) []float64 {
	pops := make([]float64, len(m.levels))
	for i, lev := range m.levels {
		pops[i] = lev.Weight * math.Exp(-lev.Energy/(physics.K*tk))
	}
	if z := floats.Sum(pops); z > 0 {
		floats.Scale(1/z, pops)
	}
	return pops
}

// BoltzmannRatio 第 iline 条谱线的玻尔兹曼比 (g_u/g_l) * exp(-(E_u-E_l)/kT)
func (m *Molecule) BoltzmannRatio(iline int, tk float64) (float64, error) {
	line, err := m.Line(iline)
	if err != nil {
		return 0, err
	}
	return m.boltzmannRatio(line.Upper, line.Lower, tk), nil
}

func (m *Molecule) boltzmannRatio(up, lo int, tk float64) float64 {
	u, l := m.levels[up], m.levels[lo]
	return (u.Weight / l.Weight) * math.Exp(-(u.Energy-l.Energy)/(physics.K*tk))
}

// ThermalVWidth 热运动速度宽度 sqrt(2kT/m)，m/s
func (m *Molecule) ThermalVWidth(tk float64) float64 {
	return physics.ThermalVWidth(tk, m.mass)
}

// ThermalFWidth 第 iline 条谱线的热运动频率宽度 Hz
func (m *Molecule) ThermalFWidth(iline int, tk float64) (float64, error) {
	line, err := m.Line(iline)
	if err != nil {
		return 0, err
	}
	dv := m.ThermalVWidth(tk)
	return math.Abs(physics.DopplerVel2Frq(line.Freq, dv) - line.Freq), nil
}

// ThermalSigmaNu 热平衡下第 iline 条谱线在视向速度 vel（相对线心）处的吸收截面
//
//	sigma = h*nu/(4*pi) * (n_l*Blu - n_u*Bul) * (c/nu) * phi(vel)
//
// phi 为以热运动速度宽度归一化的高斯速度轮廓
func (m *Molecule) ThermalSigmaNu(tk float64, iline int, vel float64) (float64, error) {
	line, err := m.Line(iline)
	if err != nil {
		return 0, err
	}
	pops := m.BoltzmannLevels(tk)
	nu := line.Freq
	phi := physics.GaussianVProfile(vel, m.ThermalVWidth(tk))
	return (physics.H * nu) / (4.0 * math.Pi) *
		(pops[line.Lower]*line.Blu - pops[line.Upper]*line.Bul) *
		(physics.C / nu) * phi, nil
}
