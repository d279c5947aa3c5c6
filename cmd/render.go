package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// 命令行输出格式
const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

// UnsupportedFormatError 不支持的输出格式
type UnsupportedFormatError struct {
	Format string
}

// Error ...
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported output format %q, use one of %s, %s, %s", e.Format, formatTable, formatYAML, formatJSON)
}

func checkFormat(format string) error {
	switch format {
	case formatTable, formatYAML, formatJSON:
		return nil
	}
	return &UnsupportedFormatError{Format: format}
}

// 按格式输出，table 格式使用 header 与 rows，其余格式序列化 data
func render(w io.Writer, format string, header table.Row, rows []table.Row, data any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	case formatTable:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		// 表头保留单位的大小写
		t.Style().Format.Header = text.FormatDefault
		t.AppendHeader(header)
		t.AppendRows(rows)
		t.Render()
		return nil
	}
	return &UnsupportedFormatError{Format: format}
}

// 科学计数法，保留 4 位有效数字
func sci(v float64) string {
	return fmt.Sprintf("%.4e", v)
}
