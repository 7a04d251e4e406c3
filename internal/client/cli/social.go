package cli

import (
	"context"
	"fmt"

	"github.com/dchistyakov/tipoff/internal/validation"
)

// runFriends печатает подтвержденных друзей
func (c *Cli) runFriends(ctx context.Context) error {
	if err := c.ensureIdentity(ctx); err != nil {
		return err
	}

	snap := c.session.Snapshot()
	c.io.Println("=== Friends ===")
	c.io.Println()

	if len(snap.Friends) == 0 {
		c.io.Println("No friends yet.")
		c.io.Println()
		c.io.Println("Use 'tipoff add <username>' to send a friend request.")
		return nil
	}

	for _, friend := range snap.Friends {
		where := "not in a room"
		if friend.RoomID != nil {
			where = fmt.Sprintf("in room %d", *friend.RoomID)
		}
		c.io.Printf("  %s (%d points, %s)\n", friend.Username, friend.Tokens, where)
	}
	return nil
}

// runRequests печатает входящие заявки в друзья
func (c *Cli) runRequests(ctx context.Context) error {
	if err := c.ensureIdentity(ctx); err != nil {
		return err
	}

	snap := c.session.Snapshot()
	c.io.Println("=== Incoming Friend Requests ===")
	c.io.Println()

	if len(snap.Requests) == 0 {
		c.io.Println("No incoming requests.")
		return nil
	}

	for _, sender := range snap.Requests {
		c.io.Printf("  %s\n", sender.Username)
	}
	c.io.Println()
	c.io.Println("Use 'tipoff accept <username>' or 'tipoff decline <username>'.")
	return nil
}

// runAddFriend отправляет заявку в друзья
func (c *Cli) runAddFriend(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing username. Usage: tipoff add <username>")
	}
	target := args[0]

	if err := validation.ValidateUsername(target); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}
	if err := c.ensureIdentity(ctx); err != nil {
		return err
	}
	if target == c.session.Identity() {
		return fmt.Errorf("cannot send a friend request to yourself")
	}

	if err := c.session.SendRequest(ctx, c.session.Identity(), target); err != nil {
		return fmt.Errorf("failed to send friend request: %w", err)
	}

	c.io.Printf("Friend request sent to %s\n", target)
	return nil
}

// runAccept принимает входящую заявку от указанного пользователя
func (c *Cli) runAccept(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing username. Usage: tipoff accept <username>")
	}
	sender := args[0]

	if err := c.ensureIdentity(ctx); err != nil {
		return err
	}

	if err := c.session.AcceptRequest(ctx, sender, c.session.Identity()); err != nil {
		return fmt.Errorf("failed to accept friend request: %w", err)
	}

	c.io.Printf("You are now friends with %s\n", sender)
	return nil
}

// runDecline отклоняет входящую заявку от указанного пользователя
func (c *Cli) runDecline(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing username. Usage: tipoff decline <username>")
	}
	sender := args[0]

	if err := c.ensureIdentity(ctx); err != nil {
		return err
	}

	if err := c.session.DeclineRequest(ctx, sender, c.session.Identity()); err != nil {
		return fmt.Errorf("failed to decline friend request: %w", err)
	}

	c.io.Printf("Declined friend request from %s\n", sender)
	return nil
}

// runUsers печатает глобальный реестр пользователей
func (c *Cli) runUsers(ctx context.Context) error {
	if err := c.ensureIdentity(ctx); err != nil {
		return err
	}

	snap := c.session.Snapshot()
	c.io.Println("=== Users ===")
	c.io.Println()

	if len(snap.AllUsers) == 0 {
		c.io.Println("No users found.")
		return nil
	}

	c.io.Printf("Found %d user(s):\n", len(snap.AllUsers))
	for _, user := range snap.AllUsers {
		marker := " "
		if user.Username == snap.Username {
			marker = "*"
		}
		c.io.Printf("%s %s (%d points)\n", marker, user.Username, user.Tokens)
	}
	return nil
}
