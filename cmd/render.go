package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Renders a chart as text",
	Long:  `Renders a chart as text, stacked by default or inline with --inline`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChart(args[0])
		if err != nil {
			return err
		}
		c.SetInline(inline)
		fmt.Print(c.String())
		return nil
	},
}
