package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/storeadmin/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getTextWithDefault = GetTextWithDefault
var getPassword = GetPassword

// Login prompts for credentials, exchanges them for a bearer token and
// populates the entity mirrors. A failed login clears any persisted
// session so a stale token cannot linger.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already logged in. Use 'logout' first.")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}

	token, user, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.session.End()
		a.store.HandleLogout()
		a.notify.Error("Login failed. Check your credentials and try again.")
		a.log.Warn(ctx, "login failed", "error", err)
		return err
	}

	a.session.Begin(token, user)
	a.notify.Success("Welcome back, " + user.Name + "!")
	a.store.HandleLogin(ctx)
	return nil
}

// Logout ends the session. The generation bump inside session.End fences
// off any fetch still in flight before the mirrors are cleared.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	a.session.End()
	a.client.SetToken("")
	a.store.HandleLogout()
	a.notify.Info("Logged out.")
	return nil
}

type profileForm struct {
	Email string `validate:"required,email"`
}

// Profile lets the logged-in user change email and, optionally, the
// account password (empty input keeps the current one).
func (a *App) Profile(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn("Logged in as " + user.Name + " <" + user.Email + "> (" + user.UserType + ")")

	email, err := getTextWithDefault(a.reader, "Email", user.Email, os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "New password (empty keeps current)")
	if err != nil {
		return err
	}

	if err := a.validate.Struct(profileForm{Email: email}); err != nil {
		a.notify.Error("Please enter a valid email address.")
		return err
	}

	if err := a.client.UpdateProfile(ctx, email, password); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.session.End()
			a.client.SetToken("")
			a.store.HandleLogout()
			a.notify.Error("Session expired. Please log in again.")
		} else {
			a.notify.Error("Profile update failed.")
		}
		a.log.Warn(ctx, "profile update failed", "error", err)
		return err
	}

	a.session.SetUserEmail(email)
	a.notify.Success("Profile updated.")
	return nil
}
