package envx

import (
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Get 获取环境变量，不存在或为空时返回默认值
func Get(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// GetFloat 获取浮点数类型的环境变量，无法解析时返回默认值
func GetFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(Get(key, ""), 64)
	if err != nil {
		return fallback
	}
	return value
}

// GetList 获取逗号分隔的环境变量，忽略空项
func GetList(key string, fallback []string) []string {
	value := Get(key, "")
	if value == "" {
		return fallback
	}
	items := lo.Map(strings.Split(value, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})
	return lo.Filter(items, func(s string, _ int) bool {
		return s != ""
	})
}
