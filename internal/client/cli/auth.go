package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and attempts to create an
// account through the guard pipeline. Guard and remote failures all carry
// user-safe messages, so the error text is printed as-is.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
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

	if err := a.authService.SignUp(ctx, name, email, password); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Account created. You are signed in.")
	return nil
}

// Login prompts for credentials and tries to authenticate.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.SignIn(ctx, email, password); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Signed in.")
	return nil
}

// Logout ends the remote session. The local state is cleared even when the
// remote call fails.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Signed out.")
	return nil
}

// Profile shows the signed-in user.
func (a *App) Profile(ctx context.Context) error {
	snap := a.session.Snapshot()
	if !snap.Authenticated || snap.User == nil {
		printlnFn("Not signed in.")
		return nil
	}
	printlnFn("Name: " + snap.User.Name)
	printlnFn("Email: " + snap.User.Email)
	if snap.User.Avatar != "" {
		printlnFn("Avatar: " + snap.User.Avatar)
	}
	return nil
}
