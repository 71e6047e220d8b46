package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/artlog/internal/client/client"
	"github.com/dmitrijs2005/artlog/internal/client/models"
)

// getSimpleText and confirm are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	confirm       = Confirm
)

// Login asks for a username and a profile picture URL, unless both are given
// as arguments, and obtains the display identity.
//
// Validation and service failures are printed; the service's detail is shown
// verbatim when present.
func (a *App) Login(ctx context.Context, args []string) error {
	var username, picture string
	if len(args) >= 2 {
		username, picture = args[0], args[1]
	} else {
		var err error
		if username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
			return err
		}
		if picture, err = getSimpleText(a.reader, "Enter profile picture URL", a.out); err != nil {
			return err
		}
	}

	id, err := a.authService.Login(ctx, username, picture)
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", loginMessage(err))
		return err
	}

	a.identity = &id
	fmt.Fprintf(a.out, "Logged in as %s\n", id.Username)
	return nil
}

func loginMessage(err error) string {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	if detail, ok := client.DetailOf(err); ok {
		return detail
	}
	if errors.Is(err, client.ErrUnavailable) {
		return "server unavailable"
	}
	return "login error"
}

// Logout asks for confirmation, then clears local data and the identity.
// Declining changes nothing.
func (a *App) Logout(ctx context.Context) error {
	if !confirm(a.reader, "Are you sure you want to log out?", a.out) {
		return nil
	}
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	a.identity = nil
	a.current = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
