package ginx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequestIDHeaderKey ...
const RequestIDHeaderKey = "X-Request-ID"

// InvalidParamError 路径或查询参数无法解析
type InvalidParamError struct {
	Name  string
	Value string
	Msg   string
}

// Error ...
func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid parameter %s %q: %s", e.Name, e.Value, e.Msg)
}

// GetIntParam 获取整数路径参数
func GetIntParam(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &InvalidParamError{Name: name, Value: raw, Msg: "not an integer"}
	}
	return v, nil
}

// GetFloatQuery 获取浮点数查询参数，参数不存在时 ok 为 false
func GetFloatQuery(c *gin.Context, name string) (v float64, ok bool, err error) {
	raw, exists := c.GetQuery(name)
	if !exists || strings.TrimSpace(raw) == "" {
		return 0, false, nil
	}
	v, err = strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false, &InvalidParamError{Name: name, Value: raw, Msg: "not a number"}
	}
	return v, true, nil
}

// GetPositiveFloatQuery 与 GetFloatQuery 相同，但要求取值大于 0
func GetPositiveFloatQuery(c *gin.Context, name string) (float64, bool, error) {
	v, ok, err := GetFloatQuery(c, name)
	if err != nil || !ok {
		return v, ok, err
	}
	if v <= 0 {
		return 0, false, &InvalidParamError{Name: name, Value: c.Query(name), Msg: "must be positive"}
	}
	return v, true, nil
}
