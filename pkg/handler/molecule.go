package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/hfhsieh/sparx-alpha/pkg/molecule"
	"github.com/hfhsieh/sparx-alpha/pkg/storage"
	"github.com/hfhsieh/sparx-alpha/pkg/utils/ginx"
)

// MoleculeHandler 分子数据查询接口
type MoleculeHandler struct {
	catalog *storage.Catalog
}

// NewMoleculeHandler ...
func NewMoleculeHandler(catalog *storage.Catalog) *MoleculeHandler {
	return &MoleculeHandler{catalog: catalog}
}

type speciesItem struct {
	Name   string `json:"name"`
	Loaded bool   `json:"loaded"`
}

type partnerSummary struct {
	Index    int       `json:"index"`
	ID       int       `json:"id"`
	Species  string    `json:"species"`
	Ref      string    `json:"ref"`
	Temps    []float64 `json:"temps"`
	NumTrans int       `json:"numTrans"`
}

type moleculeSummary struct {
	Name        string           `json:"name"`
	ChemName    string           `json:"chemName"`
	Weight      float64          `json:"weight"`
	Mass        float64          `json:"mass"`
	QState      string           `json:"qstate"`
	NumLevels   int              `json:"numLevels"`
	NumLines    int              `json:"numLines"`
	NumPartners int              `json:"numPartners"`
	MinFreq     float64          `json:"minFreq"`
	Partners    []partnerSummary `json:"partners"`
}

type levelItem struct {
	molecule.Level
	Population *float64 `json:"population,omitempty"`
}

type levelList struct {
	Temp          *float64    `json:"temp,omitempty"`
	PartitionFunc *float64    `json:"partitionFunc,omitempty"`
	Levels        []levelItem `json:"levels"`
}

type lineDetail struct {
	molecule.Line
	Temp           *float64 `json:"temp,omitempty"`
	BoltzmannRatio *float64 `json:"boltzmannRatio,omitempty"`
	ThermalVWidth  *float64 `json:"thermalVWidth,omitempty"`
	ThermalFWidth  *float64 `json:"thermalFWidth,omitempty"`
	Vel            *float64 `json:"vel,omitempty"`
	SigmaNu        *float64 `json:"sigmaNu,omitempty"`
}

// ListMolecules 注册表中的全部物种
func (h *MoleculeHandler) ListMolecules(c *gin.Context) {
	loaded := h.catalog.Loaded()
	items := lo.Map(h.catalog.Registry().Names(), func(name string, _ int) speciesItem {
		return speciesItem{Name: name, Loaded: lo.Contains(loaded, name)}
	})
	ginx.SetResp(c, http.StatusOK, items)
}

// RetrieveMolecule 分子概要
func (h *MoleculeHandler) RetrieveMolecule(c *gin.Context) {
	mol, err := h.catalog.Get(c.Param("name"))
	if err != nil {
		setErrResp(c, err)
		return
	}

	partners := lo.Map(mol.Partners(), func(p *molecule.CollisionPartner, idx int) partnerSummary {
		return partnerSummary{
			Index:    idx,
			ID:       p.ID(),
			Species:  p.Species(),
			Ref:      p.Ref(),
			Temps:    p.Temps(),
			NumTrans: p.NumTrans(),
		}
	})
	ginx.SetResp(c, http.StatusOK, moleculeSummary{
		Name:        mol.Name(),
		ChemName:    mol.ChemName(),
		Weight:      mol.Weight(),
		Mass:        mol.Mass(),
		QState:      mol.QState(),
		NumLevels:   mol.NumLevels(),
		NumLines:    mol.NumLines(),
		NumPartners: mol.NumPartners(),
		MinFreq:     mol.MinFreq(),
		Partners:    partners,
	})
}

// ListLevels 能级列表，指定 temp 时附带 LTE 布居与配分函数
func (h *MoleculeHandler) ListLevels(c *gin.Context) {
	mol, err := h.catalog.Get(c.Param("name"))
	if err != nil {
		setErrResp(c, err)
		return
	}
	temp, hasTemp, err := ginx.GetPositiveFloatQuery(c, "temp")
	if err != nil {
		setErrResp(c, err)
		return
	}

	resp := levelList{}
	var pops []float64
	if hasTemp {
		resp.Temp = lo.ToPtr(temp)
		resp.PartitionFunc = lo.ToPtr(mol.PartitionFunc(temp))
		pops = mol.BoltzmannLevels(temp)
	}
	resp.Levels = lo.Map(mol.Levels(), func(lev molecule.Level, idx int) levelItem {
		item := levelItem{Level: lev}
		if pops != nil {
			item.Population = lo.ToPtr(pops[idx])
		}
		return item
	})
	ginx.SetResp(c, http.StatusOK, resp)
}

// ListLines 分页的谱线列表
func (h *MoleculeHandler) ListLines(c *gin.Context) {
	mol, err := h.catalog.Get(c.Param("name"))
	if err != nil {
		setErrResp(c, err)
		return
	}
	ginx.SetResp(c, http.StatusOK, ginx.Paginate(c, mol.Lines()))
}

// RetrieveLine 谱线详情，temp 给出时计算玻尔兹曼比与热展宽，再给出 vel 时计算吸收截面
func (h *MoleculeHandler) RetrieveLine(c *gin.Context) {
	mol, err := h.catalog.Get(c.Param("name"))
	if err != nil {
		setErrResp(c, err)
		return
	}
	iline, err := ginx.GetIntParam(c, "line")
	if err != nil {
		setErrResp(c, err)
		return
	}
	line, err := mol.Line(iline)
	if err != nil {
		setErrResp(c, err)
		return
	}
	temp, hasTemp, err := ginx.GetPositiveFloatQuery(c, "temp")
	if err != nil {
		setErrResp(c, err)
		return
	}
	vel, hasVel, err := ginx.GetFloatQuery(c, "vel")
	if err != nil {
		setErrResp(c, err)
		return
	}
	if hasVel && !hasTemp {
		setErrResp(c, &ginx.InvalidParamError{Name: "vel", Value: c.Query("vel"), Msg: "requires temp"})
		return
	}

	detail := lineDetail{Line: line}
	if hasTemp {
		// 编号已检查过，以下调用不会返回错误
		ratio, _ := mol.BoltzmannRatio(iline, temp)
		fwidth, _ := mol.ThermalFWidth(iline, temp)
		detail.Temp = lo.ToPtr(temp)
		detail.BoltzmannRatio = lo.ToPtr(ratio)
		detail.ThermalVWidth = lo.ToPtr(mol.ThermalVWidth(temp))
		detail.ThermalFWidth = lo.ToPtr(fwidth)
	}
	if hasVel {
		sigma, _ := mol.ThermalSigmaNu(temp, iline, vel)
		detail.Vel = lo.ToPtr(vel)
		detail.SigmaNu = lo.ToPtr(sigma)
	}
	ginx.SetResp(c, http.StatusOK, detail)
}

// Dump 纯文本格式的分子数据
func (h *MoleculeHandler) Dump(c *gin.Context) {
	mol, err := h.catalog.Get(c.Param("name"))
	if err != nil {
		setErrResp(c, err)
		return
	}
	c.String(http.StatusOK, mol.String())
}

// 按编号或物种名（如 p-H2）查找碰撞伙伴
func lookupPartner(mol *molecule.Molecule, key string) (int, *molecule.CollisionPartner, error) {
	if idx, err := strconv.Atoi(key); err == nil {
		p, err := mol.Partner(idx)
		return idx, p, err
	}

	partners := mol.Partners()
	_, idx, found := lo.FindIndexOf(partners, func(p *molecule.CollisionPartner) bool {
		return p.Species() == key
	})
	if !found {
		return 0, nil, &PartnerNotFoundError{
			Species: mol.Name(),
			Partner: key,
			Existing: lo.Map(partners, func(p *molecule.CollisionPartner, _ int) string {
				return p.Species()
			}),
		}
	}
	return idx, partners[idx], nil
}
