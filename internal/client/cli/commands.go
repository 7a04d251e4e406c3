package cli

import (
	"context"
	"fmt"
)

// Run выполняет одну команду клиента
// Неизвестная команда печатает справку и возвращает ошибку
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "friends":
		return c.runFriends(ctx)
	case "requests":
		return c.runRequests(ctx)
	case "add":
		return c.runAddFriend(ctx, args)
	case "accept":
		return c.runAccept(ctx, args)
	case "decline":
		return c.runDecline(ctx, args)
	case "users":
		return c.runUsers(ctx)
	case "rooms":
		return c.runRooms(ctx)
	case "create":
		return c.runCreateRoom(ctx)
	case "join":
		return c.runJoinRoom(ctx, args)
	case "leave":
		return c.runLeaveRoom(ctx)
	case "game":
		return c.runGame(ctx)
	case "play":
		return c.runPlay(ctx)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
