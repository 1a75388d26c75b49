package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/inkling"
)

// Run executes the contacts command.
func (c *ContactsCmd) Run(deps *Dependencies) error {
	contacts, err := deps.Contacts.Contacts(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", inkling.ErrorMessage(err))
		return err
	}

	if len(contacts) == 0 {
		fmt.Fprintln(deps.Stdout, "No contacts found. Use 'inkling add-contact' to create one.")
		return nil
	}

	for _, contact := range contacts {
		flag := " "
		if contact.Send {
			flag = "*"
		}
		fmt.Fprintf(deps.Stdout, "%3d %s %s  %s\n", contact.Position, flag, contact.Name, contact.Email)
	}

	return nil
}

// Run executes the add-contact command.
func (c *AddContactCmd) Run(deps *Dependencies) error {
	contact := &inkling.Contact{
		Name:  c.Name,
		Email: c.Email,
		Send:  !c.Skip,
	}

	if err := deps.Contacts.CreateContact(deps.Ctx, contact); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", inkling.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %s <%s> at position %d\n", contact.Name, contact.Email, contact.Position)
	return nil
}

// Run executes the subscribe command.
func (c *SubscribeCmd) Run(deps *Dependencies) error {
	sub, err := deps.Contacts.Subscribe(deps.Ctx, c.Name, c.Email)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", inkling.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Subscribed %s at %s\n", sub.Email, sub.CreatedAt.Format(time.RFC3339))
	return nil
}
