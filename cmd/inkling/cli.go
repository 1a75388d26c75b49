package main

import (
	"context"
	"io"

	"github.com/fwojciec/inkling"
	"github.com/fwojciec/inkling/send"
	"github.com/fwojciec/inkling/site"
	"github.com/fwojciec/inkling/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Config    inkling.Config
	Contacts  inkling.ContactService
	Source    inkling.DocumentSource
	Extractor inkling.Extractor
	Sender    *send.Sender
	Builder   *site.Builder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Send       SendCmd       `cmd:"" help:"Send an edition to every send-enabled contact"`
	TestSend   TestSendCmd   `cmd:"" name:"test-send" help:"Send an edition to a single test address"`
	Build      BuildCmd      `cmd:"" help:"Build the static site"`
	Titles     TitlesCmd     `cmd:"" help:"List edition titles from the source document"`
	Contacts   ContactsCmd   `cmd:"" help:"List contacts"`
	AddContact AddContactCmd `cmd:"" name:"add-contact" help:"Add a contact"`
	Subscribe  SubscribeCmd  `cmd:"" help:"Record a subscription signup"`
}

// SendCmd is the "send" subcommand.
type SendCmd struct {
	Subject string `arg:"" help:"Edition title (must match a Heading 1 in the document)"`
}

// TestSendCmd is the "test-send" subcommand.
type TestSendCmd struct {
	Subject string `arg:"" help:"Edition title (must match a Heading 1 in the document)"`
	To      string `required:"" help:"Test recipient address"`
	Name    string `default:"Tester" help:"Test recipient name"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Out string `short:"o" default:"public" help:"Output directory"`
}

// TitlesCmd is the "titles" subcommand.
type TitlesCmd struct{}

// ContactsCmd is the "contacts" subcommand.
type ContactsCmd struct{}

// AddContactCmd is the "add-contact" subcommand.
type AddContactCmd struct {
	Name  string `arg:"" help:"Contact name"`
	Email string `arg:"" help:"Contact email address"`
	Skip  bool   `help:"Create the contact with sending disabled"`
}

// SubscribeCmd is the "subscribe" subcommand.
type SubscribeCmd struct {
	Email string `arg:"" help:"Subscriber email address"`
	Name  string `arg:"" optional:"" help:"Subscriber name"`
}
