package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(numbersCmd)
}

var numbersCmd = &cobra.Command{
	Use:   "numbers <file>",
	Short: "Converts chords to Nashville numbers",
	Long:  `Converts every chord to its scale degree relative to the chart's key`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChart(args[0])
		if err != nil {
			return err
		}
		if err := c.ToNumbers(); err != nil {
			return err
		}
		c.SetInline(inline)
		fmt.Print(c.String())
		return nil
	},
}
