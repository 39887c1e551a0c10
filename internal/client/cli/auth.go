package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/marketcart/internal/common"
)

// Login prompts for credentials and authenticates against the known
// accounts. Failures are reported to the user; only I/O problems propagate.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.session.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Login failed: invalid email or password.")
			return nil
		}
		a.log.Error(ctx, "login failed", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Login successful. Welcome back, %s!\n", u.Name)
	return nil
}

// Register prompts for account details, creates the account, and logs it in.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	isSeller, err := GetYesNo(a.reader, "Register as a seller?", a.out)
	if err != nil {
		return err
	}

	u, err := a.session.Register(ctx, name, email, password, isSeller)
	if err != nil {
		if errors.Is(err, common.ErrEmailAlreadyInUse) {
			fmt.Fprintln(a.out, "Registration failed: email already in use.")
			return nil
		}
		a.log.Error(ctx, "registration failed", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Registration successful. Welcome, %s!\n", u.Name)
	return nil
}

// Logout clears the active session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "You have been logged out.")
	return nil
}
