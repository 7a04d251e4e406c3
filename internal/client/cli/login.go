package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dchistyakov/tipoff/internal/client/storage"
	"github.com/dchistyakov/tipoff/internal/validation"
)

// runLogin входит под указанным username
// Пользователь создается на сервере при первом входе; пароля нет,
// identity подтверждается только именем. ClientID устройства переживает
// повторные входы под тем же именем.
func (c *Cli) runLogin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing username. Usage: tipoff login <username>")
	}
	username := args[0]

	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}

	clientID := uuid.New().String()
	if saved, err := c.store.GetSession(ctx); err == nil && saved.Username == username {
		clientID = saved.ClientID
	}

	serverURL := ""
	if c.apiClient != nil {
		serverURL = c.apiClient.BaseURL()
	}

	if err := c.store.SaveSession(ctx, &storage.SessionData{
		Username:  username,
		ClientID:  clientID,
		ServerURL: serverURL,
		SavedAt:   time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	if c.apiClient != nil {
		c.apiClient.SetClientID(clientID)
	}
	c.session.SetIdentity(ctx, username)

	if errMsg := c.session.Err(); errMsg != "" {
		c.io.Printf("Logged in as %s (offline: %s)\n", username, errMsg)
		c.io.Println("The session will sync once the server is reachable.")
		return nil
	}

	snap := c.session.Snapshot()
	c.io.Printf("Logged in as %s\n", username)
	c.io.Printf("Points: %d\n", snap.Points)
	c.io.Printf("Friends: %d\n", len(snap.Friends))
	if len(snap.Requests) > 0 {
		c.io.Printf("Incoming friend requests: %d\n", len(snap.Requests))
	}
	if snap.RoomID != nil {
		c.io.Printf("Current room: %d\n", *snap.RoomID)
	}
	return nil
}
