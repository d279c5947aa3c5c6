package funcs

import (
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/hfhsieh/sparx-alpha/pkg/physics"
)

// NewFuncMap 模板函数：sprig 全家桶 + 单位换算
func NewFuncMap() template.FuncMap {
	funcMap := sprig.TxtFuncMap()
	// 能量 J -> 波数 cm^-1
	funcMap["wavenumber"] = physics.JouleToWavenumber
	// 频率 Hz -> GHz
	funcMap["ghz"] = func(hz float64) float64 {
		return hz / 1e9
	}
	// 速率系数 m^3 s^-1 -> cm^3 s^-1
	funcMap["cm3"] = func(v float64) float64 {
		return v / physics.CubicCm
	}
	// 质量 kg -> eV
	funcMap["ev"] = func(kg float64) float64 {
		return kg * physics.C * physics.C / physics.EV
	}
	return funcMap
}
