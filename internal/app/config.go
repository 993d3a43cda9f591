package app

import (
	"io"

	"github.com/spf13/afero"
)

// Live repaint modes for Config.Live.
const (
	LiveAuto = "auto"
	LiveOn   = "on"
	LiveOff  = "off"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Out       io.Writer // rendered state and messages, e.g. os.Stdout
	Err       io.Writer // log output; defaults to io.Discard
	Fs        afero.Fs  // optional; defaults to the OS filesystem
	MaxDigits int       // elide displayed values longer than this; 0 = never
	Live      string    // LiveAuto, LiveOn or LiveOff
	Verbose   bool      // debug logging
}
