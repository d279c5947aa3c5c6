package molecule

// DownRate 第 itrans 个碰撞跃迁在温度 tk 下的向下速率（m^3 s^-1）
//
// 温度低于（高于）采样范围时返回最低（最高）采样温度处的速率，不做外推；
// 范围内线性插值；只有一个采样温度时总是返回该值。查询不分配内存。
func (p *CollisionPartner) DownRate(itrans int, tk float64) (float64, error) {
	if err := checkIndex("collisional transition", itrans, len(p.trans)); err != nil {
		return 0, err
	}
	return p.trans[itrans].rate(p.temps, tk), nil
}

func (t *CollisionalTransition) rate(temps []float64, tk float64) float64 {
	n := len(temps)
	switch {
	case tk <= temps[0]:
		return t.kul[0]
	case tk >= temps[n-1]:
		return t.kul[n-1]
	case t.pl == nil:
		return t.kul[0]
	}
	return t.pl.Predict(tk)
}

// BoltzmannRatio 第 itrans 个碰撞跃迁的玻尔兹曼比，能级数据取自 mol
func (p *CollisionPartner) BoltzmannRatio(mol *Molecule, itrans int, tk float64) (float64, error) {
	if err := checkIndex("collisional transition", itrans, len(p.trans)); err != nil {
		return 0, err
	}
	tr := p.trans[itrans]
	return mol.boltzmannRatio(tr.Upper, tr.Lower, tk), nil
}

// UpRate 第 itrans 个碰撞跃迁的向上速率
//
//	K_lu = K_ul * (g_u/g_l) * exp(-(E_u-E_l)/kT)
//
// NOTE: 这里的 K_ul 固定取第 0 个碰撞跃迁的向下速率，而不是 itrans 自身的，
// 与已有求解结果保持一致；确认后再决定是否改为 itrans 自身的速率
func (p *CollisionPartner) UpRate(mol *Molecule, itrans int, tk float64) (float64, error) {
	ratio, err := p.BoltzmannRatio(mol, itrans, tk)
	if err != nil {
		return 0, err
	}
	down, err := p.DownRate(0, tk)
	if err != nil {
		return 0, err
	}
	return down * ratio, nil
}

// FindTransition 查找上下能级与给定值相同的碰撞跃迁
func (p *CollisionPartner) FindTransition(up, lo int) (int, bool) {
	for i := range p.trans {
		if p.trans[i].Upper == up && p.trans[i].Lower == lo {
			return i, true
		}
	}
	return -1, false
}

// CritDens 第 iline 条谱线在温度 tk 下的临界密度 A_ul / K_ul（m^-3）
//
// 碰撞数据中没有对应跃迁时返回 *NoMatchingTransitionError
func (p *CollisionPartner) CritDens(mol *Molecule, iline int, tk float64) (float64, error) {
	line, err := mol.Line(iline)
	if err != nil {
		return 0, err
	}
	itrans, ok := p.FindTransition(line.Upper, line.Lower)
	if !ok {
		return 0, &NoMatchingTransitionError{Line: iline, Upper: line.Upper, Lower: line.Lower, Partner: p.species}
	}
	return line.Aul / p.trans[itrans].rate(p.temps, tk), nil
}
