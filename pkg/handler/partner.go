package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hfhsieh/sparx-alpha/pkg/utils/ginx"
)

type partnerRef struct {
	Index   int    `json:"index"`
	ID      int    `json:"id"`
	Species string `json:"species"`
}

type rateDetail struct {
	Partner        partnerRef `json:"partner"`
	Trans          int        `json:"trans"`
	Upper          int        `json:"upper"`
	Lower          int        `json:"lower"`
	Temp           float64    `json:"temp"`
	DownRate       float64    `json:"downRate"`
	UpRate         float64    `json:"upRate"`
	BoltzmannRatio float64    `json:"boltzmannRatio"`
}

type critDensDetail struct {
	Partner  partnerRef `json:"partner"`
	Line     int        `json:"line"`
	Trans    int        `json:"trans"`
	Temp     float64    `json:"temp"`
	CritDens float64    `json:"critDens"`
}

// 速率类查询必须给出温度
func requiredTemp(c *gin.Context) (float64, error) {
	temp, ok, err := ginx.GetPositiveFloatQuery(c, "temp")
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &ginx.InvalidParamError{Name: "temp", Msg: "required"}
	}
	return temp, nil
}

// GetRates 碰撞跃迁在给定温度下的向下与向上速率（m^3 s^-1）
func (h *MoleculeHandler) GetRates(c *gin.Context) {
	mol, err := h.catalog.Get(c.Param("name"))
	if err != nil {
		setErrResp(c, err)
		return
	}
	pidx, partner, err := lookupPartner(mol, c.Param("partner"))
	if err != nil {
		setErrResp(c, err)
		return
	}
	itrans, err := ginx.GetIntParam(c, "trans")
	if err != nil {
		setErrResp(c, err)
		return
	}
	temp, err := requiredTemp(c)
	if err != nil {
		setErrResp(c, err)
		return
	}

	trans, err := partner.Trans(itrans)
	if err != nil {
		setErrResp(c, err)
		return
	}
	down, _ := partner.DownRate(itrans, temp)
	up, _ := partner.UpRate(mol, itrans, temp)
	ratio, _ := partner.BoltzmannRatio(mol, itrans, temp)

	ginx.SetResp(c, http.StatusOK, rateDetail{
		Partner:        partnerRef{Index: pidx, ID: partner.ID(), Species: partner.Species()},
		Trans:          itrans,
		Upper:          trans.Upper,
		Lower:          trans.Lower,
		Temp:           temp,
		DownRate:       down,
		UpRate:         up,
		BoltzmannRatio: ratio,
	})
}

// GetCritDens 谱线相对该碰撞伙伴的临界密度（m^-3）
func (h *MoleculeHandler) GetCritDens(c *gin.Context) {
	mol, err := h.catalog.Get(c.Param("name"))
	if err != nil {
		setErrResp(c, err)
		return
	}
	pidx, partner, err := lookupPartner(mol, c.Param("partner"))
	if err != nil {
		setErrResp(c, err)
		return
	}
	iline, err := ginx.GetIntParam(c, "line")
	if err != nil {
		setErrResp(c, err)
		return
	}
	temp, err := requiredTemp(c)
	if err != nil {
		setErrResp(c, err)
		return
	}

	critDens, err := partner.CritDens(mol, iline, temp)
	if err != nil {
		setErrResp(c, err)
		return
	}
	// CritDens 成功意味着谱线编号合法且存在对应的碰撞跃迁
	line, _ := mol.Line(iline)
	itrans, _ := partner.FindTransition(line.Upper, line.Lower)

	ginx.SetResp(c, http.StatusOK, critDensDetail{
		Partner:  partnerRef{Index: pidx, ID: partner.ID(), Species: partner.Species()},
		Line:     iline,
		Trans:    itrans,
		Temp:     temp,
		CritDens: critDens,
	})
}
