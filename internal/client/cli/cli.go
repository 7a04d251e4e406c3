package cli

import (
	"context"
	"fmt"

	"github.com/dchistyakov/tipoff/internal/client/api"
	"github.com/dchistyakov/tipoff/internal/client/iocli"
	"github.com/dchistyakov/tipoff/internal/client/session"
	"github.com/dchistyakov/tipoff/internal/client/storage"
)

// Cli связывает команды клиента с сервисом сессии и хранилищем
type Cli struct {
	apiClient *api.Client
	session   *session.Service
	store     storage.SessionStorage
	io        iocli.IO
}

func New(apiClient *api.Client, sessionService *session.Service, store storage.SessionStorage, io iocli.IO) *Cli {
	return &Cli{
		apiClient: apiClient,
		session:   sessionService,
		store:     store,
		io:        io,
	}
}

// ensureIdentity поднимает сохраненную сессию и синхронизируется с бекендом
// Команды с данными зовут его первым делом; без сохраненной сессии — ошибка
func (c *Cli) ensureIdentity(ctx context.Context) error {
	if c.session.Identity() != "" {
		return nil
	}

	saved, err := c.store.GetSession(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			return fmt.Errorf("not logged in. Please run 'tipoff login <username>' first")
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if c.apiClient != nil {
		c.apiClient.SetClientID(saved.ClientID)
	}
	c.session.SetIdentity(ctx, saved.Username)
	return nil
}

func (c *Cli) PrintUsage() {
	c.io.Println("Tipoff Client")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  tipoff [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  --version        Show version information")
	c.io.Println("  --server URL     Server URL (default: http://localhost:8000)")
	c.io.Println("  --db PATH        Path to local database (default: tipoff-client.db)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  login <username>     Log in (user is created on first login)")
	c.io.Println("  logout               Log out and forget the saved session")
	c.io.Println("  status               Show session status")
	c.io.Println("  friends              List confirmed friends")
	c.io.Println("  requests             List incoming friend requests")
	c.io.Println("  add <username>       Send a friend request")
	c.io.Println("  accept <username>    Accept an incoming friend request")
	c.io.Println("  decline <username>   Decline an incoming friend request")
	c.io.Println("  users                List all known users")
	c.io.Println("  rooms                List all rooms")
	c.io.Println("  create               Create a room and join it")
	c.io.Println("  join <room-id>       Join a room")
	c.io.Println("  leave                Leave the current room")
	c.io.Println("  game                 Start the game in the current room")
	c.io.Println("  play                 Answer questions and wager points")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  tipoff login alice")
	c.io.Println("  tipoff add bob")
	c.io.Println("  tipoff create")
	c.io.Println("  tipoff join 5")
	c.io.Println("  tipoff game")
	c.io.Println("  tipoff --server https://example.com play")
}
