package logging

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hfhsieh/sparx-alpha/pkg/envs"
)

var initOnce sync.Once

// 访问日志（查询 API）
var accessLogger *logrus.Logger

// 分子数据加载日志
var loaderLogger *logrus.Logger

const (
	LogTypeSystem = "system"
	LogTypeAccess = "access"
	LogTypeLoader = "loader"
)

// InitLogger 初始化日志（标准输出 + 文件），未初始化时各 Getter 回退到系统日志
func InitLogger() {
	initSystemLogger()

	initOnce.Do(func() {
		accessLogger = newJsonLogger(LogTypeAccess)
		loaderLogger = newJsonLogger(LogTypeLoader)
	})
}

func GetSystemLogger() *logrus.Logger {
	return logrus.StandardLogger()
}

func GetAccessLogger() *logrus.Logger {
	if accessLogger == nil {
		return GetSystemLogger()
	}
	return accessLogger
}

func GetLoaderLogger() *logrus.Logger {
	if loaderLogger == nil {
		return GetSystemLogger()
	}
	return loaderLogger
}

func initSystemLogger() {
	// 设置日志输出
	writer, err := getWriter(LogTypeSystem)
	if err != nil {
		panic(err)
	}
	logrus.SetOutput(writer)

	// 设置日志格式
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: time.DateTime,
	})

	logrus.SetLevel(parseLevel(envs.LogLevel))
}

func newJsonLogger(logType string) *logrus.Logger {
	logger := logrus.New()
	// 设置日志输出
	writer, err := getWriter(logType)
	if err != nil {
		panic(err)
	}
	logger.SetOutput(writer)

	// 设置日志格式
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.DateTime,
		PrettyPrint:     false,
	})

	logger.SetLevel(parseLevel(envs.LogLevel))
	return logger
}

// 日志等级解析失败时使用 info
func parseLevel(s string) logrus.Level {
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
