package cmd

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/perahi/songchart/midifile"
)

var midiOut string

func init() {
	midiCmd.Flags().StringVarP(&midiOut, "out", "o", "", "output MIDI path (default: input with .mid extension)")
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi <file>",
	Short: "Exports a chart's chords as a MIDI file",
	Long:  `Exports the chord progression as a Standard MIDI File, one block chord per chunk`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadChart(args[0])
		if err != nil {
			return err
		}
		out := midiOut
		if out == "" {
			out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".mid"
		}
		if err := midifile.WriteFile(c, out); err != nil {
			return err
		}
		logrus.Infof("wrote %s", out)
		return nil
	},
}
