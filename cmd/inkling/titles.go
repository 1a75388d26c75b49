package main

import (
	"fmt"

	"github.com/fwojciec/inkling"
)

// Run executes the titles command.
func (c *TitlesCmd) Run(deps *Dependencies) error {
	doc, err := deps.Source.Export(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", inkling.ErrorMessage(err))
		return err
	}

	titles := deps.Extractor.Titles(doc)
	if len(titles) == 0 {
		fmt.Fprintln(deps.Stdout, "No editions found (no Heading 1 in the document).")
		return nil
	}

	for _, title := range titles {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", inkling.Slugify(title), title)
	}

	return nil
}
