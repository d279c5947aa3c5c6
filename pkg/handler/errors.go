package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/hfhsieh/sparx-alpha/pkg/common/errcode"
	"github.com/hfhsieh/sparx-alpha/pkg/lamda"
	"github.com/hfhsieh/sparx-alpha/pkg/molecule"
	"github.com/hfhsieh/sparx-alpha/pkg/registry"
	"github.com/hfhsieh/sparx-alpha/pkg/utils/ginx"
)

// PartnerNotFoundError 分子中没有请求的碰撞伙伴
type PartnerNotFoundError struct {
	Species  string
	Partner  string
	Existing []string
}

// Error ...
func (e *PartnerNotFoundError) Error() string {
	return fmt.Sprintf("molecule %s has no collision partner %s, available: %v", e.Species, e.Partner, e.Existing)
}

// 错误类型到 HTTP 状态码与错误码的映射
func statusOf(err error) (int, int) {
	var (
		unknownSpecies *registry.UnknownSpeciesError
		indexErr       *molecule.IndexError
		invalidParam   *ginx.InvalidParamError
		noMatching     *molecule.NoMatchingTransitionError
		partnerMissing *PartnerNotFoundError
		formatErr      *lamda.FormatError
		unknownPartner *molecule.UnknownPartnerError
	)
	switch {
	case errors.As(err, &unknownSpecies):
		return http.StatusNotFound, errcode.UnknownSpecies
	case errors.As(err, &indexErr):
		return http.StatusBadRequest, errcode.IndexOutOfRange
	case errors.As(err, &invalidParam):
		return http.StatusBadRequest, errcode.InvalidParam
	case errors.As(err, &noMatching):
		return http.StatusNotFound, errcode.NoMatchingTransition
	case errors.As(err, &partnerMissing):
		return http.StatusNotFound, errcode.UnknownPartner
	case errors.As(err, &formatErr), errors.As(err, &unknownPartner):
		return http.StatusInternalServerError, errcode.MalformedData
	default:
		return http.StatusInternalServerError, errcode.Unknown
	}
}

func setErrResp(c *gin.Context, err error) {
	ginx.SetError(c, err)
	statusCode, code := statusOf(err)
	ginx.SetErrResp(c, statusCode, code, err.Error())
}
