package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"cinevoice/internal/app"
	"cinevoice/internal/app/export"
	"cinevoice/internal/config"
)

var outputPath string
var limit int

func init() {
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "exchanges.xlsx", "output xlsx file path")
	Cmd.Flags().IntVarP(&limit, "limit", "n", 0, "export at most this many exchanges, 0 for all")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded exchanges to an Excel file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()

		dao, err := app.ProvideExchangeDAO(cfg)
		if err != nil {
			return err
		}
		defer dao.Close()

		n := limit
		if n <= 0 {
			total, err := dao.Count()
			if err != nil {
				return err
			}
			n = total
		}
		if n == 0 {
			fmt.Println("no exchanges recorded")
			return nil
		}

		exchanges, err := dao.List(n, 0)
		if err != nil {
			return err
		}

		if err := export.ToExcel(exchanges, outputPath); err != nil {
			return err
		}

		fmt.Printf("exported %d exchange(s) to %s\n", len(exchanges), outputPath)
		return nil
	},
}
