package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dchistyakov/tipoff/internal/client/storage"
)

// runStatus показывает состояние сохраненной сессии и результат
// последней синхронизации
func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	saved, err := c.store.GetSession(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			c.io.Println("Status: Not logged in")
			c.io.Println()
			c.io.Println("Run 'tipoff login <username>' to log in.")
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	c.io.Println("Status: Logged in")
	c.io.Printf("Username:  %s\n", saved.Username)
	c.io.Printf("Client ID: %s\n", saved.ClientID)
	if saved.ServerURL != "" {
		c.io.Printf("Server:    %s\n", saved.ServerURL)
	}
	c.io.Printf("Saved at:  %s\n", saved.SavedAt.Format(time.RFC3339))

	if err := c.ensureIdentity(ctx); err != nil {
		return err
	}

	snap := c.session.Snapshot()
	c.io.Println()
	if snap.Err != "" {
		c.io.Printf("Last sync failed: %s\n", snap.Err)
		return nil
	}

	c.io.Printf("Points: %d\n", snap.Points)
	c.io.Printf("Friends: %d\n", len(snap.Friends))
	c.io.Printf("Incoming requests: %d\n", len(snap.Requests))
	if snap.RoomID != nil {
		c.io.Printf("Current room: %d (%d member(s))\n",
			*snap.RoomID, len(c.session.CurrentRoomMembers()))
	} else {
		c.io.Println("Current room: none")
	}
	return nil
}
