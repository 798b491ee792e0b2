package cmd

import "fmt"

// VersionCmd prints the build version resolved in main (ldflags or "dev").
type VersionCmd struct{}

func (v *VersionCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintln(ctx.Out, ctx.Version)
	return err
}
