package cli

import (
	"context"
	"fmt"

	"github.com/dchistyakov/tipoff/internal/client/storage"
)

// runLogout сбрасывает identity и удаляет сохраненную сессию
func (c *Cli) runLogout(ctx context.Context) error {
	c.session.SetIdentity(ctx, "")

	if err := c.store.DeleteSession(ctx); err != nil {
		if err == storage.ErrSessionNotFound {
			c.io.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	c.io.Println("Logged out.")
	return nil
}
