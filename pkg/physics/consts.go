package physics

import "math"

// 物理常数（SI）
const (
	// G 引力常数 m^3kg^-1s^-2
	G = 6.673e-11
	// C 光速 m s^-1
	C = 2.99792458e8
	// K 玻尔兹曼常数 J K^-1
	K = 1.3806503e-23
	// H 普朗克常数 J s
	H = 6.62606876e-34
	// SigmaSB 斯特藩-玻尔兹曼常数 W m^-2 K^-4
	SigmaSB = 5.67e-8
	// Me 电子质量 kg
	Me = 9.1093897e-31
	// Mp 质子质量 kg
	Mp = 1.6726231e-27
)

// SqrtPi sqrt(pi)
var SqrtPi = math.Sqrt(math.Pi)

// 单位换算（换算到 SI）
const (
	// Deg 角度
	Deg = math.Pi / 180.0
	// Amin 角分
	Amin = Deg / 60.0
	// Asec 角秒
	Asec = Amin / 60.0

	Minute = 60.0
	Hour   = 60.0 * Minute
	Day    = 24.0 * Hour
	Year   = 365.242199 * Day

	// Au 天文单位 m
	Au = 1.49598e11
	// Pc 秒差距 m
	Pc = 3.08568025e16
	// Km 千米
	Km = 1.0e3
	// Cm 厘米
	Cm = 1.0e-2
	// PerCC cm^-3 -> m^-3
	PerCC = 1.0e6
	// CubicCm cm^3 -> m^3
	CubicCm = 1.0e-6

	// Amu 原子质量单位 kg
	Amu = 1.66053873e-27
	// Msun 太阳质量 kg
	Msun = 1.9891e30

	// EV 电子伏特 J
	EV = 1.602176487e-19

	// Jy 央斯基 W m^-2 Hz^-1
	Jy = 1e-26
)

// WavenumberToJoule 将波数（cm^-1）换算为能量（J）
func WavenumberToJoule(v float64) float64 {
	return v / Cm * H * C
}

// JouleToWavenumber 将能量（J）换算为波数（cm^-1）
func JouleToWavenumber(e float64) float64 {
	return e / (H * C) * Cm
}
