package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/invotrack/invocli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the server. On
// success the token is stored by the auth service and the prompt switches
// to the logged-in state.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		a.renderError(err)
		return err
	}

	a.userEmail = email
	fmt.Println("Logged in. Welcome to your dashboard.")
	return nil
}

// Signup prompts for the registration fields and creates an account.
// Validation failures are shown without contacting the server.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, "Enter phone number (10 digits)", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Signup(ctx, name, email, phone, password); err != nil {
		a.renderError(err)
		return err
	}

	a.userEmail = email
	fmt.Println("Account created. Welcome to your dashboard.")
	return nil
}

// Google fetches the OAuth authorization URL and prints it for the user to
// open in a browser. In a browser client this would be a full-page redirect.
func (a *App) Google(ctx context.Context) error {
	url, err := a.authService.GoogleAuthURL(ctx)
	if err != nil {
		a.renderError(err)
		return err
	}
	fmt.Println("Open this URL in your browser to continue with Google:")
	fmt.Println(url)
	return nil
}

// Logout notifies the server and clears the local session. The local state
// is reset even when the server call fails.
func (a *App) Logout(ctx context.Context) error {
	err := a.authService.Logout(ctx)
	a.userEmail = ""
	a.invoices = nil
	if err != nil {
		a.renderError(err)
		return err
	}
	fmt.Println("Logged out.")
	return nil
}
