package cli

import "context"

// Admin prompts for the shared secret and unlocks admin mode for the rest
// of the session. Not a real authorization system: one advisory secret,
// compared in constant time by the gate.
func (a *App) Admin(ctx context.Context) error {
	if a.isAdmin() {
		printlnFn("Admin mode is already unlocked.")
		return nil
	}
	if !a.gate.Enabled() {
		printlnFn("Admin access is not configured.")
		return nil
	}

	secret, err := GetSecret(a.out())
	if err != nil {
		return err
	}

	if a.gate.Unlock(a.sess, secret) {
		a.logger.Info(ctx, "admin mode unlocked", "session", a.sess.ID)
		printlnFn("Admin mode unlocked.")
	} else {
		a.logger.Warn(ctx, "admin unlock rejected", "session", a.sess.ID)
		printlnFn("Wrong admin password.")
	}
	return nil
}
