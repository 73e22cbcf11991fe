package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/perahi/songchart/chart"
	"github.com/perahi/songchart/config"
)

var (
	cfg        config.AppConfig
	cfgPath    string
	extensions bool
	inline     bool
)

var rootCmd = &cobra.Command{
	Use:   "songchart",
	Short: "Parse, transpose and render chord charts",
	Long:  `Parses ChordPro-like chord charts, transposes them between keys or into Nashville numbers, and renders them as text, PDF or MIDI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if err := cfg.SetupLogger(); err != nil {
			return err
		}
		if !cmd.Flags().Changed("extensions") {
			extensions = cfg.Extensions
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "songchart.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVar(&extensions, "extensions", false, "recognize chords-over-lyrics input lines")
	rootCmd.PersistentFlags().BoolVarP(&inline, "inline", "i", false, "render chords inline with lyrics")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func loadChart(path string) (*chart.Chart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}
	c, err := chart.Parse(string(data), chart.Options{Extensions: extensions})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s", path)
	}
	return c, nil
}
