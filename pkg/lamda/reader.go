package lamda

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// 碰撞速率表可能很宽（几十个温度点），需要放大单行缓冲
const maxLineSize = 1 << 20

// ReadFile 读取并解析指定路径的数据文件
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to access molecular data file %s", path)
	}
	defer f.Close()

	return Parse(f)
}

// Parse 按固定段落顺序解析数据文件，任何错误都不会返回部分结果
func Parse(r io.Reader) (*Document, error) {
	p := &parser{cur: newCursor(r)}
	return p.exec()
}

type parser struct {
	cur *cursor
	doc Document
}

func (p *parser) exec() (*Document, error) {
	for _, f := range []func() error{
		p.parseSpecies,
		p.parseWeight,
		p.parseLevels,
		p.parseLines,
		p.parsePartners,
	} {
		if err := f(); err != nil {
			return nil, err
		}
	}
	return &p.doc, nil
}

// 第 1-2 行：分子名称
func (p *parser) parseSpecies() error {
	line, err := p.cur.value(SectionSpecies)
	if err != nil {
		return err
	}
	p.doc.Species = line
	p.doc.SpeciesLine = p.cur.line
	return nil
}

// 第 3-4 行：分子量（amu）
func (p *parser) parseWeight() error {
	line, err := p.cur.value(SectionWeight)
	if err != nil {
		return err
	}
	p.doc.Weight, err = p.cur.parseFloat(SectionWeight, line)
	return err
}

// 能级数量 + 能级表（编号，能量 cm^-1，统计权重，量子态）
func (p *parser) parseLevels() error {
	nlev, err := p.cur.count(SectionLevelCount)
	if err != nil {
		return err
	}

	header, err := p.cur.next(SectionLevelTable)
	if err != nil {
		return err
	}
	p.doc.QState = parseQStateLabel(header)

	p.doc.Levels = make([]LevelRow, 0, nlev)
	for i := 0; i < nlev; i++ {
		cols, err := p.cur.row(SectionLevelTable)
		if err != nil {
			return err
		}
		if len(cols) < 4 {
			return p.cur.errorf(SectionLevelTable, strings.Join(cols, " "),
				"level row %d has %d columns, want at least 4", i+1, len(cols))
		}
		row := LevelRow{Line: p.cur.line, State: strings.Join(cols[3:], " ")}
		if row.Index, err = p.cur.parseInt(SectionLevelTable, cols[0]); err != nil {
			return err
		}
		if row.Energy, err = p.cur.parseFloat(SectionLevelTable, cols[1]); err != nil {
			return err
		}
		if row.Weight, err = p.cur.parseFloat(SectionLevelTable, cols[2]); err != nil {
			return err
		}
		p.doc.Levels = append(p.doc.Levels, row)
	}
	return nil
}

// 辐射跃迁数量 + 跃迁表（编号，上能级，下能级，A 系数，频率，上能级能量）
//
// 文件中的频率和能量列不使用，频率总是由能级能量重新计算
func (p *parser) parseLines() error {
	nline, err := p.cur.count(SectionLineCount)
	if err != nil {
		return err
	}
	if err = p.cur.skip(SectionLineTable); err != nil {
		return err
	}

	p.doc.Lines = make([]LineRow, 0, nline)
	for i := 0; i < nline; i++ {
		cols, err := p.cur.row(SectionLineTable)
		if err != nil {
			return err
		}
		if len(cols) != 6 {
			return p.cur.errorf(SectionLineTable, strings.Join(cols, " "),
				"line row %d has %d columns, want 6", i+1, len(cols))
		}
		row := LineRow{Line: p.cur.line}
		if row.Index, err = p.cur.parseInt(SectionLineTable, cols[0]); err != nil {
			return err
		}
		if row.Upper, err = p.cur.parseInt(SectionLineTable, cols[1]); err != nil {
			return err
		}
		if row.Lower, err = p.cur.parseInt(SectionLineTable, cols[2]); err != nil {
			return err
		}
		if row.Aul, err = p.cur.parseFloat(SectionLineTable, cols[3]); err != nil {
			return err
		}
		p.doc.Lines = append(p.doc.Lines, row)
	}
	return nil
}

func (p *parser) parsePartners() error {
	ncol, err := p.cur.count(SectionPartnerCount)
	if err != nil {
		return err
	}

	p.doc.Partners = make([]PartnerBlock, 0, ncol)
	for i := 0; i < ncol; i++ {
		block, err := parsePartner(p.cur, i+1)
		if err != nil {
			return err
		}
		p.doc.Partners = append(p.doc.Partners, block)
	}
	return nil
}

// parsePartner 解析一个碰撞伙伴段落，只推进游标，不依赖任何已解析的数据
func parsePartner(cur *cursor, num int) (PartnerBlock, error) {
	section := func(name string) string {
		return fmt.Sprintf("partner %d %s", num, name)
	}
	var block PartnerBlock

	// 碰撞伙伴编号及参考文献
	line, err := cur.value(section(SectionPartnerID))
	if err != nil {
		return block, err
	}
	cols := strings.Fields(line)
	if block.ID, err = cur.parseInt(section(SectionPartnerID), cols[0]); err != nil {
		return block, err
	}
	block.Ref = strings.Join(cols[1:], " ")
	block.Line = cur.line

	ntrans, err := cur.count(section(SectionTransCount))
	if err != nil {
		return block, err
	}
	ntemp, err := cur.count(section(SectionTempCount))
	if err != nil {
		return block, err
	}

	// 采样温度
	line, err = cur.value(section(SectionTemps))
	if err != nil {
		return block, err
	}
	cols = strings.Fields(line)
	if len(cols) != ntemp {
		return block, cur.errorf(section(SectionTemps), line,
			"got %d temperatures, want %d", len(cols), ntemp)
	}
	block.TempsLine = cur.line
	block.Temps = make([]float64, ntemp)
	for i, col := range cols {
		if block.Temps[i], err = cur.parseFloat(section(SectionTemps), col); err != nil {
			return block, err
		}
	}

	// 碰撞速率表（编号，上能级，下能级，各温度下的速率 cm^3 s^-1）
	if err = cur.skip(section(SectionCollisionTable)); err != nil {
		return block, err
	}
	block.Trans = make([]TransRow, 0, ntrans)
	for i := 0; i < ntrans; i++ {
		cols, err := cur.row(section(SectionCollisionTable))
		if err != nil {
			return block, err
		}
		if len(cols) != 3+ntemp {
			return block, cur.errorf(section(SectionCollisionTable), strings.Join(cols, " "),
				"transition row %d has %d columns, want %d", i+1, len(cols), 3+ntemp)
		}
		row := TransRow{Line: cur.line, Rates: make([]float64, ntemp)}
		if row.Index, err = cur.parseInt(section(SectionCollisionTable), cols[0]); err != nil {
			return block, err
		}
		if row.Upper, err = cur.parseInt(section(SectionCollisionTable), cols[1]); err != nil {
			return block, err
		}
		if row.Lower, err = cur.parseInt(section(SectionCollisionTable), cols[2]); err != nil {
			return block, err
		}
		for j, col := range cols[3:] {
			if row.Rates[j], err = cur.parseFloat(section(SectionCollisionTable), col); err != nil {
				return block, err
			}
		}
		block.Trans = append(block.Trans, row)
	}
	return block, nil
}

// 能级表头形如 "!LEVEL + ENERGIES(cm^-1) + WEIGHT + J"，第 4 个字段起为量子态标签名
func parseQStateLabel(header string) string {
	cols := strings.Split(header, "+")
	if len(cols) <= 3 {
		return ""
	}
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return strings.Join(cols[3:], "+")
}

// cursor 逐行读取，记录当前行号
type cursor struct {
	sc   *bufio.Scanner
	line int
}

func newCursor(r io.Reader) *cursor {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &cursor{sc: sc}
}

// next 读取下一行，文件提前结束时返回 FormatError
func (c *cursor) next(section string) (string, error) {
	if !c.sc.Scan() {
		if err := c.sc.Err(); err != nil {
			return "", errors.Wrapf(err, "lamda: read %s after line %d", section, c.line)
		}
		return "", NewFormatError(section, c.line+1, "", "unexpected end of file")
	}
	c.line++
	return c.sc.Text(), nil
}

// skip 跳过一行（注释或表头）
func (c *cursor) skip(section string) error {
	_, err := c.next(section)
	return err
}

// value 跳过注释行并返回其后的非空值行
func (c *cursor) value(section string) (string, error) {
	if err := c.skip(section); err != nil {
		return "", err
	}
	line, err := c.next(section)
	if err != nil {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", c.errorf(section, "", "missing value")
	}
	return line, nil
}

// row 读取表格中的一行并按空白切分
func (c *cursor) row(section string) ([]string, error) {
	line, err := c.next(section)
	if err != nil {
		return nil, err
	}
	return strings.Fields(line), nil
}

// count 读取一个数量段落，不允许负数
func (c *cursor) count(section string) (int, error) {
	line, err := c.value(section)
	if err != nil {
		return 0, err
	}
	n, err := c.parseInt(section, line)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, c.errorf(section, line, "negative count")
	}
	return n, nil
}

func (c *cursor) parseInt(section, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, c.errorf(section, s, "not an integer")
	}
	return n, nil
}

func (c *cursor) parseFloat(section, s string) (float64, error) {
	// 兼容 Fortran 风格的指数记号，如 1.0D-10
	v, err := strconv.ParseFloat(strings.NewReplacer("D", "E", "d", "e").Replace(s), 64)
	if err != nil {
		return 0, c.errorf(section, s, "not a number")
	}
	return v, nil
}

func (c *cursor) errorf(section, value, format string, args ...any) error {
	return NewFormatError(section, c.line, value, format, args...)
}
