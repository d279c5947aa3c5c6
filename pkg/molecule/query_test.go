package molecule

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hfhsieh/sparx-alpha/pkg/physics"
)

func TestBoltzmannLevelsSumToOne(t *testing.T) {
	mol := loadFixture(t, "co.dat")
	for _, tk := range []float64{0.5, 2.7, 10, 35.5, 300, 1e4} {
		pops := mol.BoltzmannLevels(tk)
		require.Len(t, pops, mol.NumLevels())
		sum := 0.0
		for _, p := range pops {
			assert.GreaterOrEqual(t, p, 0.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "T=%g", tk)
	}
}

func TestPartitionFunc(t *testing.T) {
	mol := loadFixture(t, "co.dat")

	// 低温极限只有基态
	assert.InDelta(t, 1.0, mol.PartitionFunc(0.1), 1e-12)
	// 高温极限为统计权重之和
	assert.InDelta(t, 25.0, mol.PartitionFunc(1e9), 1e-5)

	levels := mol.Levels()
	tk := 20.0
	pops := mol.BoltzmannLevels(tk)
	z := mol.PartitionFunc(tk)
	for i, lev := range levels {
		assert.InEpsilon(t, lev.Weight*math.Exp(-lev.Energy/(physics.K*tk))/z, pops[i], 1e-12)
	}
}

func TestBoltzmannRatio(t *testing.T) {
	mol := loadFixture(t, "co.dat")
	tk := 15.0
	pops := mol.BoltzmannLevels(tk)
	for i, line := range mol.Lines() {
		ratio, err := mol.BoltzmannRatio(i, tk)
		require.NoError(t, err)
		assert.InEpsilon(t, pops[line.Upper]/pops[line.Lower], ratio, 1e-12)
	}

	_, err := mol.BoltzmannRatio(4, tk)
	requireIndexError(t, err)
	_, err = mol.BoltzmannRatio(-1, tk)
	requireIndexError(t, err)
}

func requireIndexError(t *testing.T, err error) {
	t.Helper()
	var ie *IndexError
	require.True(t, errors.As(err, &ie), "got %T: %v", err, err)
}

func TestDownRateEdgePolicy(t *testing.T) {
	mol := loadFixture(t, "co.dat")
	p, err := mol.Partner(0)
	require.NoError(t, err)

	for i := 0; i < p.NumTrans(); i++ {
		tr, err := p.Trans(i)
		require.NoError(t, err)
		kul := tr.Kul()

		// 低于最低采样温度
		for _, tk := range []float64{0, 1, 9.999} {
			got, err := p.DownRate(i, tk)
			require.NoError(t, err)
			assert.Equal(t, kul[0], got)
		}
		// 高于最高采样温度
		for _, tk := range []float64{40.0001, 100, 1e6} {
			got, err := p.DownRate(i, tk)
			require.NoError(t, err)
			assert.Equal(t, kul[2], got)
		}
		// 采样点处取采样值
		for j, tk := range p.Temps() {
			got, err := p.DownRate(i, tk)
			require.NoError(t, err)
			assert.Equal(t, kul[j], got)
		}
		// 区间中点线性插值
		got, err := p.DownRate(i, 15)
		require.NoError(t, err)
		assert.InEpsilon(t, (kul[0]+kul[1])/2, got, 1e-12)
		got, err = p.DownRate(i, 30)
		require.NoError(t, err)
		assert.InEpsilon(t, (kul[1]+kul[2])/2, got, 1e-12)
	}

	_, err = p.DownRate(6, 10)
	requireIndexError(t, err)
}

func TestDownRateMonotonicBetweenSamples(t *testing.T) {
	mol := loadFixture(t, "co.dat")
	p, err := mol.Partner(0)
	require.NoError(t, err)

	// 第 1 个跃迁的速率随温度单调递减
	prev := math.Inf(1)
	for tk := 10.0; tk <= 40.0; tk += 0.25 {
		got, err := p.DownRate(1, tk)
		require.NoError(t, err)
		assert.LessOrEqual(t, got, prev, "T=%g", tk)
		prev = got
	}
}

func TestDownRateSingleSample(t *testing.T) {
	mol, err := Build(twoLevelDoc())
	require.NoError(t, err)
	p, err := mol.Partner(0)
	require.NoError(t, err)

	for _, tk := range []float64{1, 5, 10, 50, 1000} {
		got, err := p.DownRate(0, tk)
		require.NoError(t, err)
		assert.InEpsilon(t, 1e-23, got, 1e-12)
	}
}

func TestTwoLevelScenario(t *testing.T) {
	mol := loadFixture(t, "twolevel.dat")

	freq, err := mol.LineFreq(0)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e11, freq, 1e-12)

	p, err := mol.Partner(0)
	require.NoError(t, err)
	assert.Equal(t, "H2", p.Species())

	down, err := p.DownRate(0, 5)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e-23, down, 1e-12)

	ncrit, err := p.CritDens(mol, 0, 5)
	require.NoError(t, err)
	assert.InEpsilon(t, 1e-5/1e-23, ncrit, 1e-12)
}

func TestUpRateUsesFirstTransition(t *testing.T) {
	mol := loadFixture(t, "co.dat")
	p, err := mol.Partner(0)
	require.NoError(t, err)

	tk := 25.0
	down0, err := p.DownRate(0, tk)
	require.NoError(t, err)
	for i := 0; i < p.NumTrans(); i++ {
		tr, _ := p.Trans(i)
		levels := mol.Levels()
		u, l := levels[tr.Upper], levels[tr.Lower]
		ratio := (u.Weight / l.Weight) * math.Exp(-(u.Energy-l.Energy)/(physics.K*tk))

		got, err := p.BoltzmannRatio(mol, i, tk)
		require.NoError(t, err)
		assert.InEpsilon(t, ratio, got, 1e-12)

		up, err := p.UpRate(mol, i, tk)
		require.NoError(t, err)
		assert.InEpsilon(t, down0*ratio, up, 1e-12)
	}

	_, err = p.UpRate(mol, 99, tk)
	requireIndexError(t, err)
}

func TestCritDens(t *testing.T) {
	mol := loadFixture(t, "co.dat")
	p, err := mol.Partner(0)
	require.NoError(t, err)

	tk := 20.0
	for i, line := range mol.Lines() {
		itrans, ok := p.FindTransition(line.Upper, line.Lower)
		require.True(t, ok)
		kul, err := p.DownRate(itrans, tk)
		require.NoError(t, err)

		ncrit, err := p.CritDens(mol, i, tk)
		require.NoError(t, err)
		assert.InEpsilon(t, line.Aul/kul, ncrit, 1e-12)
	}

	_, err = p.CritDens(mol, 10, tk)
	requireIndexError(t, err)
}

func TestCritDensNoMatchingTransition(t *testing.T) {
	mol := loadFixture(t, "co.dat")
	o, ok := mol.PartnerBySpecies("o-H2")
	require.True(t, ok)

	// o-H2 只有 2->1, 3->2, 4->3
	_, err := o.CritDens(mol, 2, 20)
	require.NoError(t, err)

	_, err = o.CritDens(mol, 3, 20)
	require.Error(t, err)
	var ne *NoMatchingTransitionError
	require.True(t, errors.As(err, &ne), "got %T: %v", err, err)
	assert.Equal(t, 3, ne.Line)
	assert.Equal(t, 4, ne.Upper)
	assert.Equal(t, 3, ne.Lower)
	assert.Equal(t, "o-H2", ne.Partner)

	_, ok = o.FindTransition(4, 3)
	assert.False(t, ok)
}

func TestThermalWidths(t *testing.T) {
	mol := loadFixture(t, "co.dat")
	tk := 10.0

	dv := mol.ThermalVWidth(tk)
	assert.InEpsilon(t, math.Sqrt(2*physics.K*tk/(28*physics.Amu)), dv, 1e-12)

	for i, line := range mol.Lines() {
		dnu, err := mol.ThermalFWidth(i, tk)
		require.NoError(t, err)
		assert.Greater(t, dnu, 0.0)
		// dv << c 时 dnu ~ nu * dv / c
		assert.InEpsilon(t, line.Freq*dv/physics.C, dnu, 1e-5)
	}

	_, err := mol.ThermalFWidth(mol.NumLines(), tk)
	requireIndexError(t, err)
}

func TestThermalSigmaNu(t *testing.T) {
	mol := loadFixture(t, "co.dat")
	tk := 20.0
	line, err := mol.Line(1)
	require.NoError(t, err)

	center, err := mol.ThermalSigmaNu(tk, 1, 0)
	require.NoError(t, err)
	assert.Greater(t, center, 0.0)

	// 轮廓关于线心对称，且随偏移减小
	left, _ := mol.ThermalSigmaNu(tk, 1, -100)
	right, _ := mol.ThermalSigmaNu(tk, 1, 100)
	assert.InEpsilon(t, left, right, 1e-12)
	assert.Less(t, right, center)

	// 对速度积分消去归一化的高斯轮廓
	pops := mol.BoltzmannLevels(tk)
	want := (physics.H * line.Freq) / (4 * math.Pi) *
		(pops[line.Lower]*line.Blu - pops[line.Upper]*line.Bul) * (physics.C / line.Freq)
	dv := mol.ThermalVWidth(tk)
	step := dv / 100
	sum := 0.0
	for v := -10 * dv; v <= 10*dv; v += step {
		s, err := mol.ThermalSigmaNu(tk, 1, v)
		require.NoError(t, err)
		sum += s * step
	}
	assert.InEpsilon(t, want, sum, 1e-6)

	_, err = mol.ThermalSigmaNu(tk, -1, 0)
	requireIndexError(t, err)
}

func TestConcurrentQueries(t *testing.T) {
	mol := loadFixture(t, "co.dat")
	p, err := mol.Partner(0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				tk := 5 + float64((w*200+i)%50)
				_, _ = p.DownRate(i%p.NumTrans(), tk)
				_, _ = p.CritDens(mol, i%mol.NumLines(), tk)
				_ = mol.BoltzmannLevels(tk)
			}
		}(w)
	}
	wg.Wait()
}

func TestDump(t *testing.T) {
	mol := loadFixture(t, "co.dat")
	out := mol.String()

	for _, want := range []string{
		"Name: CO\n",
		"Molecular weight: 28 (",
		"Number of levels: 5\n",
		"ENERGY(cm^-1)",
		"Number of lines: 4\n",
		"FREQ(GHz)",
		"Total 2 collisional partners: p-H2, o-H2\n",
		"Collisional partner #1: p-H2 (code=2)\n",
		"Collisional partner #2: o-H2 (code=3)\n",
		"Reference: CO-pH2 sample subset, interpolated from Yang et al. (2010)\n",
		"Number of transitions: 6\n",
		"3.3120e-11",
		"10K",
		"40K",
	} {
		assert.Contains(t, out, want)
	}

	// 能级表 5 行 + 谱线表 4 行 + 速率表 6 + 3 行
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Greater(t, len(lines), 5+4+6+3)
}
