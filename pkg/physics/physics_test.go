package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWavenumberRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, 3.845033413, 1234.5} {
		assert.InDelta(t, v, JouleToWavenumber(WavenumberToJoule(v)), 1e-12*math.Max(1, v))
	}
	// 1 cm^-1 = h * c * 100 J
	assert.InEpsilon(t, H*C*100, WavenumberToJoule(1), 1e-15)
}

func TestDopplerRoundTrip(t *testing.T) {
	f0 := 115.2712018e9
	for _, v := range []float64{-3e4, -100, 0, 250, 1e5} {
		f := DopplerVel2Frq(f0, v)
		assert.InDelta(t, v, DopplerFrq2Vel(f0, f), 1e-6)
	}
	// 远离观测者时频率降低
	assert.Less(t, DopplerVel2Frq(f0, 1000), f0)
}

func TestThermalVWidth(t *testing.T) {
	mass := 28.0 * Amu
	assert.InEpsilon(t, math.Sqrt(2*K*10/mass), ThermalVWidth(10, mass), 1e-15)
	assert.Greater(t, ThermalVWidth(100, mass), ThermalVWidth(10, mass))
}

func TestGaussianProfilesUnitArea(t *testing.T) {
	width := 150.0
	step := 0.5
	sum := 0.0
	for v := -20 * width; v <= 20*width; v += step {
		sum += GaussianVProfile(v, width) * step
	}
	assert.InDelta(t, 1.0, sum, 1e-6)

	nu0, dnu := 1e11, 1e5
	sum = 0.0
	fstep := dnu / 200
	for nu := nu0 - 20*dnu; nu <= nu0+20*dnu; nu += fstep {
		sum += GaussianFProfile(nu, nu0, dnu) * fstep
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestBlackBody(t *testing.T) {
	assert.InEpsilon(t, 300.0, StefanBoltzmannF2T(StefanBoltzmannT2F(300)), 1e-12)
	assert.InEpsilon(t, C/WienDispLawNu(30), WienDispLawLambda(30), 1e-15)

	// Rayleigh-Jeans 极限
	nu, tk := 1e6, 1000.0
	assert.InEpsilon(t, 2*nu*nu*K*tk/(C*C), PlanckLaw(nu, tk), 1e-6)
	// 极端 Wien 区间不应返回 NaN
	assert.Equal(t, 0.0, PlanckLaw(1e20, 1))
}

func TestKeplerianVelocity(t *testing.T) {
	v := KeplerianVelocity(Msun, Au)
	assert.InDelta(t, 29.8e3, v, 200)
}
