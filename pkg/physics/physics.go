// Package physics 提供谱线计算用到的常数和基础物理公式
package physics

import "math"

// StefanBoltzmannT2F 黑体在温度 tk 下的总辐射通量 F = sigma * T^4
func StefanBoltzmannT2F(tk float64) float64 {
	return SigmaSB * math.Pow(tk, 4)
}

// StefanBoltzmannF2T 由总辐射通量反推黑体温度
func StefanBoltzmannF2T(f float64) float64 {
	return math.Pow(f/SigmaSB, 0.25)
}

// PlanckLaw 普朗克函数 B_nu(T)
//
// NOTE: h*nu >> k*T 时 exp 会迅速溢出，此时返回 0
func PlanckLaw(nu, tk float64) float64 {
	return (2.0 * H * nu * nu * nu / (C * C)) / math.Expm1(H*nu/(K*tk))
}

// WienDispLawNu 维恩位移定律，返回峰值频率 h*nu_max = 2.82*k*T
func WienDispLawNu(tk float64) float64 {
	return 2.82 * K * tk / H
}

// WienDispLawLambda 维恩位移定律，返回峰值波长
func WienDispLawLambda(tk float64) float64 {
	return C / WienDispLawNu(tk)
}

// DopplerVel2Frq 多普勒效应：视向速度 v 下，静止频率 f0 对应的观测频率
//
//	f = f0 * sqrt((c - v) / (c + v))
func DopplerVel2Frq(f0, v float64) float64 {
	return f0 * math.Sqrt((C-v)/(C+v))
}

// DopplerFrq2Vel DopplerVel2Frq 的逆运算
func DopplerFrq2Vel(f0, f float64) float64 {
	r := (f / f0) * (f / f0)
	return C * (1.0 - r) / (1.0 + r)
}

// ThermalVWidth 热运动速度宽度 sqrt(2kT/m)
//
// 注意结果是 sqrt(2)*sigma，sigma 为对应高斯分布的标准差
func ThermalVWidth(tk, mass float64) float64 {
	return math.Sqrt(2.0 * K * tk / mass)
}

// GaussianFProfile 归一化的高斯频率轮廓，deltaNu 为 sqrt(2)*sigma
func GaussianFProfile(nu, nu0, deltaNu float64) float64 {
	x := (nu - nu0) / deltaNu
	return (1.0 / (deltaNu * SqrtPi)) * math.Exp(-x*x)
}

// GaussianVProfile 归一化的高斯速度轮廓，deltaVel 为 sqrt(2)*sigma
func GaussianVProfile(vel, deltaVel float64) float64 {
	x := vel / deltaVel
	return (1.0 / (deltaVel * SqrtPi)) * math.Exp(-x*x)
}

// KeplerianVelocity 中心质量 m 在半径 r 处的开普勒速度
func KeplerianVelocity(m, r float64) float64 {
	return math.Sqrt(G * m / r)
}
