package cmd

import "github.com/alecthomas/kong"

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Serve   ServeCmd   `cmd:"" help:"Run the aggregation HTTP API."`
	Search  SearchCmd  `cmd:"" help:"Run one aggregation and print the results."`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration."`
	Version VersionCmd `cmd:"" help:"Print version."`
}

func NewCLI() *CLI {
	return &CLI{}
}
