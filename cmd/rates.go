package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/hfhsieh/sparx-alpha/pkg/envs"
	"github.com/hfhsieh/sparx-alpha/pkg/molecule"
	"github.com/hfhsieh/sparx-alpha/pkg/physics"
)

type rateItem struct {
	Trans int `json:"trans" yaml:"trans"`
	Upper int `json:"upper" yaml:"upper"`
	Lower int `json:"lower" yaml:"lower"`
	// cm^3 s^-1
	DownRate float64 `json:"downRate" yaml:"downRate"`
	UpRate   float64 `json:"upRate" yaml:"upRate"`
}

type rateList struct {
	Species string     `json:"species" yaml:"species"`
	Partner string     `json:"partner" yaml:"partner"`
	Temp    float64    `json:"temp" yaml:"temp"`
	Rates   []rateItem `json:"rates" yaml:"rates"`
}

// NewRatesCmd ...
func NewRatesCmd() *cobra.Command {
	var (
		molecDir string
		partner  string
		trans    int
		temp     float64
		format   string
	)

	ratesCmd := cobra.Command{
		Use:   "rates <species>",
		Short: "Show collisional rate coefficients of a partner at a kinetic temperature.",
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
			p, ok := mol.PartnerBySpecies(partner)
			if !ok {
				return errors.Errorf("molecule %s has no collision partner %s", mol.Name(), partner)
			}

			// 未指定 --trans 时列出全部碰撞跃迁
			indexes := lo.Range(p.NumTrans())
			if trans >= 0 {
				indexes = []int{trans}
			}
			list, err := buildRateList(mol, p, indexes, temp)
			if err != nil {
				return err
			}

			header := table.Row{"TRANS", "UPPER", "LOWER", "DOWN(cm^3s^-1)", "UP(cm^3s^-1)"}
			rows := lo.Map(list.Rates, func(item rateItem, _ int) table.Row {
				return table.Row{item.Trans, item.Upper, item.Lower, sci(item.DownRate), sci(item.UpRate)}
			})
			return render(cmd.OutOrStdout(), format, header, rows, list)
		},
	}

	addMolecDirFlag(&ratesCmd, &molecDir)
	ratesCmd.Flags().StringVar(&partner, "partner", "", "collision partner species, e.g. p-H2")
	ratesCmd.Flags().IntVar(&trans, "trans", -1, "0-based collisional transition index, -1 lists all")
	ratesCmd.Flags().Float64Var(&temp, "temp", envs.DefaultKineticTemp, "kinetic temperature (K)")
	ratesCmd.Flags().StringVar(&format, "format", formatTable, "output format: table, yaml or json")
	_ = ratesCmd.MarkFlagRequired("partner")

	return &ratesCmd
}

func buildRateList(mol *molecule.Molecule, p *molecule.CollisionPartner, indexes []int, temp float64) (*rateList, error) {
	list := &rateList{Species: mol.Name(), Partner: p.Species(), Temp: temp}
	for _, i := range indexes {
		tr, err := p.Trans(i)
		if err != nil {
			return nil, err
		}
		down, err := p.DownRate(i, temp)
		if err != nil {
			return nil, err
		}
		up, err := p.UpRate(mol, i, temp)
		if err != nil {
			return nil, err
		}
		list.Rates = append(list.Rates, rateItem{
			Trans:    i,
			Upper:    tr.Upper,
			Lower:    tr.Lower,
			DownRate: down / physics.CubicCm,
			UpRate:   up / physics.CubicCm,
		})
	}
	return list, nil
}

func init() {
	rootCmd.AddCommand(NewRatesCmd())
}
