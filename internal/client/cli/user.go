package cli

import (
	"context"
	"fmt"
	"os"
	"time"
)

// whoami shows the profile and what is known about the session token.
func (a *App) whoami(ctx context.Context) {
	user, err := a.userService.Get(ctx)
	if err != nil {
		a.renderError(err)
		return
	}

	fmt.Printf("Name:  %s\n", user.Name)
	fmt.Printf("Email: %s\n", user.Email)
	if user.PhoneNumber != "" {
		fmt.Printf("Phone: %s\n", user.PhoneNumber)
	}

	if sess, ok := a.authService.Current(); ok {
		if exp := sess.ExpiresAt(); !exp.IsZero() {
			fmt.Printf("Session expires: %s\n", exp.Local().Format(time.RFC1123))
		}
	}
}

func (a *App) updateProfile(ctx context.Context) {
	name, err := getSimpleText(a.reader, "New name", os.Stdout)
	if err != nil {
		return
	}
	email, err := getSimpleText(a.reader, "New email", os.Stdout)
	if err != nil {
		return
	}

	updated, err := a.userService.Update(ctx, name, email)
	if err != nil {
		a.renderError(err)
		return
	}
	a.userEmail = updated.Email
	fmt.Println("Profile updated successfully")
}

// deleteAccount asks for confirmation, then removes the account and the
// local session.
func (a *App) deleteAccount(ctx context.Context) {
	answer, err := getSimpleText(a.reader, "Delete your account? This cannot be undone. Type 'yes' to confirm", os.Stdout)
	if err != nil {
		return
	}
	if answer != "yes" {
		fmt.Println("Cancelled.")
		return
	}

	if err := a.userService.Delete(ctx); err != nil {
		a.renderError(err)
		return
	}
	a.userEmail = ""
	a.invoices = nil
	fmt.Println("Account deleted.")
}
