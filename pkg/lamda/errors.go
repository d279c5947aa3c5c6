package lamda

import "fmt"

// FormatError 数据文件格式错误（缺行、列数不符、非数值等）
type FormatError struct {
	// Section 出错的段落
	Section string
	// Line 出错的行号（从 1 开始，0 表示未知）
	Line int
	// Value 出错的原始内容
	Value string
	// Msg 错误描述
	Msg string
}

// Error ...
func (e *FormatError) Error() string {
	s := "lamda: " + e.Section
	if e.Line > 0 {
		s += fmt.Sprintf(" (line %d)", e.Line)
	}
	s += ": " + e.Msg
	if e.Value != "" {
		s += fmt.Sprintf(": %q", e.Value)
	}
	return s
}

// NewFormatError ...
func NewFormatError(section string, line int, value, format string, args ...any) *FormatError {
	return &FormatError{Section: section, Line: line, Value: value, Msg: fmt.Sprintf(format, args...)}
}
