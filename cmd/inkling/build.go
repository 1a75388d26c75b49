package main

import (
	"fmt"

	"github.com/fwojciec/inkling"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	result, err := deps.Builder.Build(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", inkling.ErrorMessage(err))
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", warning)
	}

	fmt.Fprintf(deps.Stdout, "Built %d pages and %d assets into %s\n", result.Pages, result.Assets, c.Out)
	return nil
}
