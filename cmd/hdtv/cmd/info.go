package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hdtv/hdtv/pkg/spectrum"
)

var infoJSON bool

// SpectrumInfo summarizes a spectrum file
type SpectrumInfo struct {
	Name       string  `json:"name"`
	Bins       int     `json:"bins"`
	Low        float64 `json:"low"`
	High       float64 `json:"high"`
	Total      float64 `json:"total"`
	MaxChannel float64 `json:"max_channel"`
	MaxCounts  float64 `json:"max_counts"`
}

var infoCmd = &cobra.Command{
	Use:   "info <spectrum>",
	Short: "Show spectrum statistics",
	Long: `Loads a spectrum file and prints the number of bins, the channel
range, the total number of counts and the fullest bin.

Examples:
  hdtv info co60.spc
  hdtv info co60.spc --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := spectrum.LoadFile(args[0])
		if err != nil {
			return err
		}

		lo, hi := h.Range()
		maxBin, maxCounts := h.MaxBin()
		info := SpectrumInfo{
			Name:       h.Name,
			Bins:       h.NBins(),
			Low:        lo,
			High:       hi,
			Total:      h.Total(),
			MaxChannel: h.BinCenter(maxBin),
			MaxCounts:  maxCounts,
		}

		out := cmd.OutOrStdout()
		if infoJSON {
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode JSON: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "Spectrum: %s\n", info.Name)
		fmt.Fprintf(out, "  Bins: %d\n", info.Bins)
		fmt.Fprintf(out, "  Channels: %g to %g\n", info.Low, info.High)
		fmt.Fprintf(out, "  Total counts: %g\n", info.Total)
		fmt.Fprintf(out, "  Maximum: %g counts at channel %g\n", info.MaxCounts, info.MaxChannel)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "output as JSON")
}
