package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hdtv/hdtv/internal/ui"
)

var (
	viewScript string
	viewLog    bool
	viewMode   string
)

var viewCmd = &cobra.Command{
	Use:   "view [spectrum...]",
	Short: "View spectra in an interactive window",
	Long: `Opens the given spectra in the viewer window.

Controls:
  Left drag          - Scroll along the energy axis
  Scroll wheel       - Zoom around the cursor
  Arrow keys         - Shift the view
  z / x              - Zoom energy axis in / out
  Z / X              - Zoom count axis in / out
  l                  - Toggle log scale
  a / y              - Toggle auto-scale / auto-scale once
  f / b              - Show all / go to the beginning
  1 / 2 / 3          - Solid, hollow or dotted spectra
  m / M              - Add marker at cursor / delete nearest marker
  Q / Escape         - Quit

Commands typed into the entry line use the script language, e.g.
"spectrum calibrate 0 0.5 0.33" or "marker x 1332.5".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, viewLog, viewMode)
		if err != nil {
			return err
		}
		return ui.Run(ui.Options{
			Config:  cfg,
			Spectra: args,
			Script:  viewScript,
		})
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVarP(&viewScript, "script", "s", "", "command file to run after loading")
	viewCmd.Flags().BoolVar(&viewLog, "log", false, "logarithmic count axis")
	viewCmd.Flags().StringVar(&viewMode, "mode", "hollow", "spectrum style: solid, hollow or dotted")
}
