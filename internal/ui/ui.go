// Package ui is the gio window around a display.Viewport.
package ui

import (
	"log"
	"os"

	"gioui.org/app"
)

// Run opens the viewer window and blocks until it closes. It takes over
// the main goroutine as gio requires, so errors end the process.
func Run(opts Options) error {
	go func() {
		w := new(app.Window)
		viewer, err := New(w, opts)
		if err != nil {
			log.Printf("[UI] %v", err)
			os.Exit(1)
		}
		if err := viewer.Run(); err != nil {
			log.Printf("[UI] %v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
