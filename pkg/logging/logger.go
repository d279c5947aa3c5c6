package logging

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hfhsieh/sparx-alpha/pkg/envs"
)

// 获取日志 Writer，这里返回双写 Writer（stderr & file）
func getWriter(logType string) (io.Writer, error) {
	osWriter, _ := getOSWriter()
	// 文件日志
	fileWriter, err := getFileWriter(envs.LogFileBaseDir, logType)
	if err != nil {
		return nil, err
	}
	return io.MultiWriter(osWriter, fileWriter), nil
}

// 日志写 stderr，stdout 留给命令输出（dump、谱线表等）
func getOSWriter() (io.Writer, error) {
	return os.Stderr, nil
}

func getFileWriter(baseDir, logType string) (io.Writer, error) {
	// 不同的日志类型分目录存储
	path := filepath.Join(baseDir, logType)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = os.MkdirAll(path, os.ModePerm); err != nil {
			return nil, err
		}
	}
	filename := logType + ".log"

	// 使用 lumberjack 实现日志切割归档
	writer := &lumberjack.Logger{
		Filename: filepath.Join(path, filename),
		// megabytes
		MaxSize:    128,
		MaxBackups: 10,
		// days
		MaxAge:    14,
		LocalTime: true,
	}
	return writer, nil
}
