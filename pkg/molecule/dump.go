package molecule

import (
	"io"
	"strings"
	"text/template"

	"github.com/samber/lo"

	"github.com/hfhsieh/sparx-alpha/pkg/utils/funcs"
)

const dumpTmpl = `Name: {{ .Name }}
Molecular weight: {{ printf "%g" .Weight }} ({{ printf "%g" .Mass }} kg, {{ printf "%g" (ev .Mass) }} eV)
Number of levels: {{ len .Levels }}
{{ printf "%10s %20s %20s %20s" "LEVEL" "ENERGY(cm^-1)" "WEIGHT" .QState }}
{{- range .Levels }}
{{ printf "%10d %20g %20g %20s" .Index (wavenumber .Energy) .Weight .State }}
{{- end }}

Number of lines: {{ len .Lines }}
{{ printf "%10s %10s %10s %20s %20s %20s %20s" "LINE" "UPPER" "LOWER" "A(s^-1)" "Bul(Inu^-1s^-1)" "Blu(Inu^-1s^-1)" "FREQ(GHz)" }}
{{- range .Lines }}
{{ printf "%10d %10d %10d %20g %20g %20g %20g" .Index .Upper .Lower .Aul .Bul .Blu (ghz .Freq) }}
{{- end }}

Total {{ len .Partners }} collisional partners: {{ .PartnerNames | join ", " }}
{{- range $i, $p := .Partners }}

Collisional partner #{{ add1 $i }}: {{ $p.Species }} (code={{ $p.ID }})
Reference: {{ $p.Ref }}
Number of transitions: {{ len $p.Trans }}
Downward collisional rate coefficients (cm^3s^-1):
{{ printf "%5s %5s %5s" "TRANS" "UPPER" "LOWER" }}{{ range $p.Temps }} {{ printf "%11gK" . }}{{ end }}
{{- range $p.Trans }}
{{ printf "%5d %5d %5d" .Index .Upper .Lower }}{{ range .Kul }} {{ printf "%12.4e" (cm3 .) }}{{ end }}
{{- end }}
{{- end }}
`

var dumpTemplate = template.Must(template.New("dump").Funcs(funcs.NewFuncMap()).Parse(dumpTmpl))

type partnerView struct {
	ID      int
	Species string
	Ref     string
	Temps   []float64
	Trans   []transView
}

type transView struct {
	Index int
	Upper int
	Lower int
	Kul   []float64
}

type dumpView struct {
	Name         string
	Weight       float64
	Mass         float64
	QState       string
	Levels       []Level
	Lines        []Line
	Partners     []partnerView
	PartnerNames []string
}

// Dump 输出可读的完整数据（名称、能级、谱线及各碰撞伙伴的速率表），用于排查数据问题
func (m *Molecule) Dump(w io.Writer) error {
	view := dumpView{
		Name:   m.name,
		Weight: m.weight,
		Mass:   m.mass,
		QState: m.qstate,
		Levels: m.levels,
		Lines:  m.lines,
		Partners: lo.Map(m.partners, func(p *CollisionPartner, _ int) partnerView {
			return partnerView{
				ID:      p.id,
				Species: p.species,
				Ref:     p.ref,
				Temps:   p.temps,
				Trans: lo.Map(p.trans, func(t CollisionalTransition, _ int) transView {
					return transView{Index: t.Index, Upper: t.Upper, Lower: t.Lower, Kul: t.kul}
				}),
			}
		}),
		PartnerNames: lo.Map(m.partners, func(p *CollisionPartner, _ int) string {
			return p.species
		}),
	}
	return dumpTemplate.Execute(w, view)
}

// String ...
func (m *Molecule) String() string {
	var sb strings.Builder
	if err := m.Dump(&sb); err != nil {
		return "molecule " + m.name + ": " + err.Error()
	}
	return sb.String()
}
