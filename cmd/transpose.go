package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perahi/songchart/theory"
)

func init() {
	rootCmd.AddCommand(transposeCmd)
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <file> <key>",
	Short: "Transposes a chart to another key",
	Long:  `Transposes a chart to another key, e.g. transpose song.chordpro Bb`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := theory.ParseScale(args[1])
		if err != nil {
			return err
		}
		c, err := loadChart(args[0])
		if err != nil {
			return err
		}
		if err := c.TransposeTo(key); err != nil {
			return err
		}
		c.SetInline(inline)
		fmt.Print(c.String())
		return nil
	},
}
