package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/inkling"
	"github.com/fwojciec/inkling/send"
)

// Run executes the send command.
func (c *SendCmd) Run(deps *Dependencies) error {
	result, err := deps.Sender.Send(deps.Ctx, c.Subject, progressPrinter(deps.Stdout))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", inkling.ErrorMessage(err))
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(deps.Stderr, "warning: %s\n", warning)
	}

	fmt.Fprintf(deps.Stdout, "Done. Sent: %d, Failed: %d\n", result.Sent, result.Failed)
	return nil
}

// Run executes the test-send command.
func (c *TestSendCmd) Run(deps *Dependencies) error {
	result, err := deps.Sender.SendTest(deps.Ctx, c.Subject, c.Name, c.To, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", inkling.ErrorMessage(err))
		return err
	}

	if result.Sent == 1 {
		fmt.Fprintf(deps.Stdout, "Test email sent to %s\n", c.To)
	} else {
		fmt.Fprintf(deps.Stdout, "Test send failed for %s\n", c.To)
	}
	return nil
}

// progressPrinter prints send progress as it happens.
func progressPrinter(w io.Writer) send.ProgressFunc {
	return func(e send.ProgressEvent) {
		switch e.Type {
		case send.ProgressStarted:
			fmt.Fprintf(w, "Sending to %d contacts…\n", e.Total)
		case send.ProgressFailed:
			fmt.Fprintf(w, "  %s: %s\n", e.Email, inkling.ErrorMessage(e.Error))
		case send.ProgressReport:
			fmt.Fprintf(w, "Progress: %d/%d\n", e.Completed, e.Total)
		}
	}
}
