package cmd

import (
	"io"

	"github.com/jobscout-in/jobscout/internal/config"
	"github.com/jobscout-in/jobscout/internal/ui"
	"github.com/rs/zerolog"
)

type Context struct {
	Out       io.Writer
	Err       io.Writer
	UI        *ui.UI
	Config    config.Config
	ConfigDir string
	Logger    zerolog.Logger
	Verbose   bool
	Version   string
}
