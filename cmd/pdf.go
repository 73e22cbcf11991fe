package cmd

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/perahi/songchart/typst"
)

var pdfOut string

func init() {
	pdfCmd.Flags().StringVarP(&pdfOut, "out", "o", "", "output PDF path (default: input with .pdf extension)")
	rootCmd.AddCommand(pdfCmd)
}

var pdfCmd = &cobra.Command{
	Use:   "pdf <file>",
	Short: "Typesets a chart to PDF",
	Long:  `Typesets a chart to PDF via the typst binary`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChart(args[0])
		if err != nil {
			return err
		}
		out := pdfOut
		if out == "" {
			out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".pdf"
		}
		if err := typst.CompilePDF(c, out, cfg.TypstBin); err != nil {
			return err
		}
		logrus.Infof("wrote %s", out)
		return nil
	},
}
