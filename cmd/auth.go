package main

import (
	"context"

	"github.com/dhkim-dev/cinewish/internal/store"
	"github.com/urfave/cli/v3"
)

// AuthRegister registers a new local account.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")
	confirm := cmd.String("confirm")
	consent := cmd.Bool("accept-terms")

	if confirm == "" {
		confirm = password
	}

	kv, cleanup, err := r.backend()
	if err != nil {
		return err
	}
	defer cleanup()

	credentials := store.NewCredentialStore(kv, r.config.TMDB.APIKey, r.logger)

	if result := credentials.ValidateRegistration(email, password, confirm, consent); !result.OK {
		r.writePlain("✗ %s\n", result.Message)
		return nil
	}

	result := credentials.Register(email, password)
	if !result.OK {
		r.writePlain("✗ %s\n", result.Message)
		return nil
	}

	r.logger.Info("account registered", "email", email)
	r.writePlain("✓ %s\n", result.Message)
	return nil
}

// AuthLogin logs in with a registered account and saves the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")
	remember := cmd.Bool("remember")

	kv, cleanup, err := r.backend()
	if err != nil {
		return err
	}
	defer cleanup()

	credentials := store.NewCredentialStore(kv, r.config.TMDB.APIKey, r.logger)
	sessions := store.NewSessionStore(kv, r.logger)

	if email == "" {
		email = sessions.RememberedEmail()
		if email == "" {
			r.writePlain("✗ no email given and none remembered\n")
			return nil
		}
		r.logger.Info("using remembered email", "email", email)
	}

	result := credentials.Login(email, password)
	if !result.OK {
		r.writePlain("✗ %s\n", result.Message)
		return nil
	}

	sessions.Save(email, remember)
	r.logger.Info("logged in", "email", email, "remember", remember)
	r.writePlain("✓ %s\n", result.Message)
	return nil
}

// AuthLogout deletes the current session. The remembered email survives so
// the next login can prefill.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	kv, cleanup, err := r.backend()
	if err != nil {
		return err
	}
	defer cleanup()

	sessions := store.NewSessionStore(kv, r.logger)
	if sessions.Current() == nil {
		r.writePlain("not logged in\n")
		return nil
	}

	sessions.Logout()
	r.writePlain("✓ logged out\n")
	return nil
}

// AuthStatus shows the current session and pings the catalog to verify the
// configured credentials. Ping failure is reported but non-fatal.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	kv, cleanup, err := r.backend()
	if err != nil {
		return err
	}
	defer cleanup()

	sessions := store.NewSessionStore(kv, r.logger)

	if session := sessions.Current(); session != nil {
		r.writePlain("logged in as %s (remember: %v)\n", session.Email, session.Remember)
	} else {
		r.writePlain("not logged in\n")
	}

	if remembered := sessions.RememberedEmail(); remembered != "" {
		r.writePlain("remembered email: %s\n", remembered)
	}

	if r.catalog == nil {
		r.writePlain("catalog: not configured\n")
		return nil
	}

	if err := r.catalog.Ping(ctx); err != nil {
		r.logger.Warn("catalog ping failed", "error", err)
		r.writePlain("catalog: unreachable (%v)\n", err)
	} else {
		r.writePlain("catalog: ok (%s)\n", r.catalog.Name())
	}

	return nil
}
