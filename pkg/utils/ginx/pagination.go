package ginx

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const (
	// MaxPageSize 单页最大数量
	MaxPageSize = 50
	// MinPageSize 单页最小数量
	MinPageSize = 10
	// MinPage 最小页码数
	MinPage = 1
)

// PaginatedData 分页数据
type PaginatedData struct {
	Count    int `json:"count"`
	PageNum  int `json:"pageNum"`
	PageSize int `json:"pageSize"`
	Results  any `json:"results"`
}

// GetPageSizeFromQuery ...
func GetPageSizeFromQuery(c *gin.Context) int {
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	pageSize = lo.Min([]int{MaxPageSize, pageSize})
	pageSize = lo.Max([]int{MinPageSize, pageSize})
	return pageSize
}

// GetPageNumFromQuery ...
func GetPageNumFromQuery(c *gin.Context) int {
	pageNum, _ := strconv.Atoi(c.Query("page_num"))
	return lo.Max([]int{MinPage, pageNum})
}

// Paginate 按查询参数中的页码与单页数量截取 items
func Paginate[T any](c *gin.Context, items []T) PaginatedData {
	pageNum, pageSize := GetPageNumFromQuery(c), GetPageSizeFromQuery(c)
	return PaginatedData{
		Count:    len(items),
		PageNum:  pageNum,
		PageSize: pageSize,
		Results:  lo.Subset(items, (pageNum-1)*pageSize, uint(pageSize)),
	}
}
