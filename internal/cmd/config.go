package cmd

import (
	"fmt"
	"strings"

	"github.com/jobscout-in/jobscout/internal/config"
)

// ConfigCmd manages the jobscout config directory (aggregation defaults and
// the optional proxies list).
type ConfigCmd struct {
	Init InitConfigCmd `cmd:"" help:"Scaffold config.json and proxies.txt with defaults."`
	Path PathConfigCmd `cmd:"" help:"Print the config directory path."`
}

type InitConfigCmd struct{}

type PathConfigCmd struct{}

func (c *InitConfigCmd) Run(ctx *Context) error {
	paths, err := config.Init()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		ctx.UI.Infof("Nothing to do, config already exists at %s", ctx.ConfigDir)
		return nil
	}
	ctx.UI.Successf("Created %s", strings.Join(paths, ", "))
	return nil
}

func (c *PathConfigCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintln(ctx.Out, ctx.ConfigDir)
	return err
}
