package molecule

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/hfhsieh/sparx-alpha/pkg/lamda"
	"github.com/hfhsieh/sparx-alpha/pkg/physics"
)

type options struct {
	name string
}

// Option 构建选项
type Option func(*options)

// WithName 指定物种名（通常为注册表中的名称）
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// Load 读取数据文件并构建分子模型
func Load(path string, opts ...Option) (*Molecule, error) {
	doc, err := lamda.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load molecule %s", path)
	}
	mol, err := Build(doc, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "load molecule %s", path)
	}
	return mol, nil
}

// Build 由解析结果构建分子模型，单位换算只在这里进行一次
func Build(doc *lamda.Document, opts ...Option) (*Molecule, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	b := &builder{doc: doc, mol: &Molecule{}}
	for _, f := range []func() error{
		b.buildIdentity,
		b.buildLevels,
		b.buildLines,
		b.buildPartners,
	} {
		if err := f(); err != nil {
			return nil, err
		}
	}

	if o.name != "" {
		b.mol.name = o.name
	}
	return b.mol, nil
}

// builder 分子模型构建器
type builder struct {
	doc *lamda.Document
	mol *Molecule
}

// 分子名称及质量
func (b *builder) buildIdentity() error {
	species := strings.TrimSpace(b.doc.Species)
	if !validSpeciesName(species) {
		return lamda.NewFormatError(lamda.SectionSpecies, b.doc.SpeciesLine, b.doc.Species, "invalid species name")
	}
	if !(b.doc.Weight > 0) {
		return lamda.NewFormatError(lamda.SectionWeight, 0, fmt.Sprint(b.doc.Weight), "molecular weight must be positive")
	}

	b.mol.name = species
	b.mol.chemName = species
	b.mol.weight = b.doc.Weight
	b.mol.mass = b.doc.Weight * physics.Amu
	b.mol.qstate = b.doc.QState
	return nil
}

// 名称不能为空，不能含不可打印字符，也不能是错位读入的注释行
func validSpeciesName(name string) bool {
	if name == "" || strings.HasPrefix(name, "!") {
		return false
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// 能级：按文件顺序编号，能量 cm^-1 -> J
func (b *builder) buildLevels() error {
	b.mol.levels = make([]Level, len(b.doc.Levels))
	for i, row := range b.doc.Levels {
		if !(row.Weight > 0) {
			return lamda.NewFormatError(lamda.SectionLevelTable, row.Line, fmt.Sprint(row.Weight),
				"level %d statistical weight must be positive", i)
		}
		b.mol.levels[i] = Level{
			Index:  i,
			Energy: physics.WavenumberToJoule(row.Energy),
			Weight: row.Weight,
			State:  row.State,
		}
	}
	return nil
}

// 谱线：频率由能级能量差重新计算，保证与能级能量一致
func (b *builder) buildLines() error {
	nlev := len(b.mol.levels)
	b.mol.lines = make([]Line, len(b.doc.Lines))
	for i, row := range b.doc.Lines {
		up, lo := row.Upper-1, row.Lower-1
		if err := b.checkLevelPair(fmt.Sprintf("line %d", i), up, lo, nlev, row.Line); err != nil {
			return err
		}

		upper, lower := b.mol.levels[up], b.mol.levels[lo]
		freq := (upper.Energy - lower.Energy) / physics.H
		if !(freq > 0) {
			return lamda.NewFormatError(lamda.SectionLineTable, row.Line, "",
				"line %d: upper level %d is not above lower level %d", i, up, lo)
		}

		bul := row.Aul * physics.C * physics.C / (2.0 * physics.H * freq * freq * freq)
		b.mol.lines[i] = Line{
			Index: i,
			Upper: up,
			Lower: lo,
			Freq:  freq,
			Aul:   row.Aul,
			Bul:   bul,
			Blu:   (upper.Weight / lower.Weight) * bul,
		}
	}

	if len(b.mol.lines) > 0 {
		freqs := make([]float64, len(b.mol.lines))
		for i, line := range b.mol.lines {
			freqs[i] = line.Freq
		}
		b.mol.minFreq = floats.Min(freqs)
	}
	return nil
}

func (b *builder) buildPartners() error {
	b.mol.partners = make([]*CollisionPartner, 0, len(b.doc.Partners))
	for _, block := range b.doc.Partners {
		p, err := b.buildPartner(block)
		if err != nil {
			return err
		}
		b.mol.partners = append(b.mol.partners, p)
	}
	return nil
}

// 碰撞伙伴：编号映射到物种，速率 cm^3 s^-1 -> m^3 s^-1
func (b *builder) buildPartner(block lamda.PartnerBlock) (*CollisionPartner, error) {
	species, ok := PartnerSpecies(block.ID)
	if !ok {
		return nil, &UnknownPartnerError{ID: block.ID, Line: block.Line}
	}
	if len(block.Temps) == 0 {
		return nil, lamda.NewFormatError(lamda.SectionTemps, block.TempsLine, "",
			"%s: at least one temperature is required", species)
	}
	// 插值要求温度严格递增
	for i := 1; i < len(block.Temps); i++ {
		if !(block.Temps[i] > block.Temps[i-1]) {
			return nil, lamda.NewFormatError(lamda.SectionTemps, block.TempsLine,
				fmt.Sprintf("%g %g", block.Temps[i-1], block.Temps[i]),
				"%s: temperatures must be strictly increasing", species)
		}
	}

	p := &CollisionPartner{
		id:      block.ID,
		species: species,
		ref:     block.Ref,
		temps:   append([]float64(nil), block.Temps...),
		trans:   make([]CollisionalTransition, len(block.Trans)),
	}

	nlev := len(b.mol.levels)
	for i, row := range block.Trans {
		up, lo := row.Upper-1, row.Lower-1
		what := fmt.Sprintf("%s collisional transition %d", species, i)
		if err := b.checkLevelPair(what, up, lo, nlev, row.Line); err != nil {
			return nil, err
		}
		if len(row.Rates) != len(p.temps) {
			return nil, lamda.NewFormatError(lamda.SectionCollisionTable, row.Line, "",
				"%s has %d rates, want %d", what, len(row.Rates), len(p.temps))
		}

		kul := make([]float64, len(row.Rates))
		for j, rate := range row.Rates {
			kul[j] = rate * physics.CubicCm
		}
		tr := CollisionalTransition{Index: i, Upper: up, Lower: lo, kul: kul}
		if len(kul) > 1 {
			tr.pl = &interp.PiecewiseLinear{}
			if err := tr.pl.Fit(p.temps, kul); err != nil {
				return nil, errors.Wrapf(err, "fit %s", what)
			}
		}
		p.trans[i] = tr
	}
	return p, nil
}

func (b *builder) checkLevelPair(what string, up, lo, nlev, line int) error {
	if up < 0 || up >= nlev {
		return &IndexError{What: what + " upper level", Index: up, Len: nlev, Line: line}
	}
	if lo < 0 || lo >= nlev {
		return &IndexError{What: what + " lower level", Index: lo, Len: nlev, Line: line}
	}
	if up == lo {
		return &IndexError{
			What: what, Index: up, Len: nlev, Line: line,
			Msg: fmt.Sprintf("%s: upper and lower level are both %d", what, up),
		}
	}
	return nil
}
