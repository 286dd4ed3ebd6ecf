package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/timediary/internal/common"
	"github.com/dmitrijs2005/timediary/internal/services"
)

// Login logs in with the given username, registering it when unknown. With
// no argument the username is prompted for.
func (a *App) Login(ctx context.Context, args []string) error {

	username := ""
	if len(args) > 0 {
		username = args[0]
	} else {
		var err error
		username, err = GetSimpleText(a.reader, "Enter username", a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return err
		}
	}

	res, err := a.identity.LoginOrRegister(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrEmptyUsername) {
			fmt.Fprintln(a.out, "Username must not be empty.")
		} else {
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return err
	}

	a.currentUser = res.User

	switch res.Outcome {
	case services.OutcomeLoggedIn:
		fmt.Fprintf(a.out, "Welcome back, %s!\n", res.User.Username)
	case services.OutcomeRegistered:
		fmt.Fprintf(a.out, "Registered a new account. Welcome, %s!\n", res.User.Username)
	}

	return nil
}

// Logout clears the saved session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.identity.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return err
	}

	a.currentUser = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the current account.
func (a *App) WhoAmI(ctx context.Context) error {
	if a.currentUser == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (since %s)\n", a.currentUser.Username, a.currentUser.CreatedAt)
	return nil
}
