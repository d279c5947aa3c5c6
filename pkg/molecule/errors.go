package molecule

import "fmt"

// IndexError 能级或跃迁编号越界，或上下能级相同
type IndexError struct {
	// What 出错的对象，如 "line 3 upper level"
	What  string
	Index int
	// Len 合法区间为 [0, Len)
	Len int
	// Line 数据文件中的行号（查询时为 0）
	Line int
	Msg  string
}

// Error ...
func (e *IndexError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = fmt.Sprintf("%s index %d out of range [0, %d)", e.What, e.Index, e.Len)
	}
	if e.Line > 0 {
		return fmt.Sprintf("molecule: %s (line %d)", msg, e.Line)
	}
	return "molecule: " + msg
}

func checkIndex(what string, idx, n int) error {
	if idx < 0 || idx >= n {
		return &IndexError{What: what, Index: idx, Len: n}
	}
	return nil
}

// UnknownPartnerError 碰撞伙伴编号不在 1..6 范围内
type UnknownPartnerError struct {
	ID   int
	Line int
}

// Error ...
func (e *UnknownPartnerError) Error() string {
	return fmt.Sprintf("molecule: unknown collision partner id %d (line %d), valid ids are 1..%d",
		e.ID, e.Line, len(partnerSpecies))
}

// NoMatchingTransitionError 辐射跃迁在碰撞伙伴的速率表中没有对应的碰撞跃迁
//
// 这表示数据缺失而非数据损坏，调用方可以跳过该谱线
type NoMatchingTransitionError struct {
	Line    int
	Upper   int
	Lower   int
	Partner string
}

// Error ...
func (e *NoMatchingTransitionError) Error() string {
	return fmt.Sprintf("molecule: radiative line %d (%d -> %d) has no counterpart in %s collision data",
		e.Line, e.Upper, e.Lower, e.Partner)
}
