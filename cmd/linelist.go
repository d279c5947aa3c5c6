package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/hfhsieh/sparx-alpha/pkg/envs"
	"github.com/hfhsieh/sparx-alpha/pkg/logging"
	"github.com/hfhsieh/sparx-alpha/pkg/molecule"
	"github.com/hfhsieh/sparx-alpha/pkg/physics"
)

type lineListItem struct {
	Line           int      `json:"line" yaml:"line"`
	Upper          int      `json:"upper" yaml:"upper"`
	Lower          int      `json:"lower" yaml:"lower"`
	FreqGHz        float64  `json:"freqGHz" yaml:"freqGHz"`
	Aul            float64  `json:"aul" yaml:"aul"`
	Bul            float64  `json:"bul" yaml:"bul"`
	Blu            float64  `json:"blu" yaml:"blu"`
	BoltzmannRatio float64  `json:"boltzmannRatio" yaml:"boltzmannRatio"`
	FWidthHz       float64  `json:"fwidthHz" yaml:"fwidthHz"`
	CritDens       *float64 `json:"critDens,omitempty" yaml:"critDens,omitempty"`
}

type lineList struct {
	Species string         `json:"species" yaml:"species"`
	Temp    float64        `json:"temp" yaml:"temp"`
	Partner string         `json:"partner,omitempty" yaml:"partner,omitempty"`
	Lines   []lineListItem `json:"lines" yaml:"lines"`
}

// NewLinelistCmd ...
func NewLinelistCmd() *cobra.Command {
	var (
		molecDir string
		temp     float64
		partner  string
		format   string
	)

	linelistCmd := cobra.Command{
		Use:   "linelist <species>",
		Short: "List radiative lines with thermal quantities at a kinetic temperature.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}
			if temp <= 0 {
				return errors.Errorf("temperature must be positive, got %g", temp)
			}

			catalog, err := newCatalog(molecDir)
			if err != nil {
				return err
			}
			mol, err := catalog.Get(args[0])
			if err != nil {
				return err
			}

			var p *molecule.CollisionPartner
			if partner != "" {
				var ok bool
				if p, ok = mol.PartnerBySpecies(partner); !ok {
					return errors.Errorf("molecule %s has no collision partner %s", mol.Name(), partner)
				}
			}

			list, err := buildLineList(mol, temp, p)
			if err != nil {
				return err
			}
			header, rows := lineListTable(list, p != nil)
			return render(cmd.OutOrStdout(), format, header, rows, list)
		},
	}

	addMolecDirFlag(&linelistCmd, &molecDir)
	linelistCmd.Flags().Float64Var(&temp, "temp", envs.DefaultKineticTemp, "kinetic temperature (K)")
	linelistCmd.Flags().StringVar(&partner, "partner", "", "collision partner species for critical densities, e.g. p-H2")
	linelistCmd.Flags().StringVar(&format, "format", formatTable, "output format: table, yaml or json")

	return &linelistCmd
}

func buildLineList(mol *molecule.Molecule, temp float64, p *molecule.CollisionPartner) (*lineList, error) {
	list := &lineList{Species: mol.Name(), Temp: temp}
	if p != nil {
		list.Partner = p.Species()
	}

	for _, line := range mol.Lines() {
		ratio, err := mol.BoltzmannRatio(line.Index, temp)
		if err != nil {
			return nil, err
		}
		fwidth, err := mol.ThermalFWidth(line.Index, temp)
		if err != nil {
			return nil, err
		}
		item := lineListItem{
			Line:           line.Index,
			Upper:          line.Upper,
			Lower:          line.Lower,
			FreqGHz:        line.Freq / 1e9,
			Aul:            line.Aul,
			Bul:            line.Bul,
			Blu:            line.Blu,
			BoltzmannRatio: ratio,
			FWidthHz:       fwidth,
		}

		if p != nil {
			critDens, err := p.CritDens(mol, line.Index, temp)
			var noMatch *molecule.NoMatchingTransitionError
			switch {
			case errors.As(err, &noMatch):
				// 碰撞数据缺失，跳过该谱线的临界密度
				logging.GetSystemLogger().Debug(err.Error())
			case err != nil:
				return nil, err
			default:
				// m^-3 -> cm^-3
				item.CritDens = lo.ToPtr(critDens * physics.CubicCm)
			}
		}
		list.Lines = append(list.Lines, item)
	}
	return list, nil
}

func lineListTable(list *lineList, withCritDens bool) (table.Row, []table.Row) {
	header := table.Row{"LINE", "UPPER", "LOWER", "FREQ(GHz)", "A(s^-1)", "Bul", "Blu", "RATIO", "FWIDTH(Hz)"}
	if withCritDens {
		header = append(header, "NCRIT(cm^-3)")
	}

	rows := lo.Map(list.Lines, func(item lineListItem, _ int) table.Row {
		row := table.Row{
			item.Line, item.Upper, item.Lower, item.FreqGHz,
			sci(item.Aul), sci(item.Bul), sci(item.Blu), sci(item.BoltzmannRatio), sci(item.FWidthHz),
		}
		if withCritDens {
			if item.CritDens != nil {
				row = append(row, sci(*item.CritDens))
			} else {
				row = append(row, "-")
			}
		}
		return row
	})
	return header, rows
}

func init() {
	rootCmd.AddCommand(NewLinelistCmd())
}
