package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for an email and password and authenticates via the session
// service. Success and failure toasts come from the service; the command
// only reports I/O problems.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	_, err = a.session.Login(ctx, email, password)
	return err
}

// Register prompts for a username, email, and password and creates a new
// account. The new identity becomes the active session.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	_, err = a.session.Register(ctx, username, email, password)
	return err
}

// Logout clears the persisted session unconditionally.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	return nil
}
