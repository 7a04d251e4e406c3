package cli

import (
	"context"
	"fmt"
	"strconv"
)

// runRooms печатает все комнаты системы
func (c *Cli) runRooms(ctx context.Context) error {
	if err := c.ensureIdentity(ctx); err != nil {
		return err
	}

	snap := c.session.Snapshot()
	c.io.Println("=== Rooms ===")
	c.io.Println()

	if len(snap.Rooms) == 0 {
		c.io.Println("No rooms found.")
		c.io.Println()
		c.io.Println("Use 'tipoff create' to create one.")
		return nil
	}

	for _, room := range snap.Rooms {
		marker := " "
		if snap.RoomID != nil && room.ID == *snap.RoomID {
			marker = "*"
		}
		c.io.Printf("%s room %d (game %d)\n", marker, room.ID, room.GameID)
	}
	return nil
}

// runCreateRoom создает комнату и сразу вводит в нее пользователя
func (c *Cli) runCreateRoom(ctx context.Context) error {
	if err := c.ensureIdentity(ctx); err != nil {
		return err
	}

	name := c.session.Identity()
	room, err := c.session.CreateRoomForUser(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	c.io.Printf("Room %d created\n", room.ID)

	// Создатель входит в свою комнату отдельным вызовом
	if _, inRoom := c.session.CurrentRoomID(); !inRoom {
		ok, err := c.session.JoinRoomForUser(ctx, name, room.ID)
		if err != nil {
			return fmt.Errorf("failed to join room %d: %w", room.ID, err)
		}
		if !ok {
			return fmt.Errorf("server refused to join room %d", room.ID)
		}
	}

	c.io.Printf("Joined room %d\n", room.ID)
	return nil
}

// runJoinRoom вводит пользователя в комнату с указанным id
func (c *Cli) runJoinRoom(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing room id. Usage: tipoff join <room-id>")
	}

	roomID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid room id %q", args[0])
	}

	if err := c.ensureIdentity(ctx); err != nil {
		return err
	}

	ok, err := c.session.JoinRoomForUser(ctx, c.session.Identity(), roomID)
	if err != nil {
		return fmt.Errorf("failed to join room %d: %w", roomID, err)
	}
	if !ok {
		return fmt.Errorf("server refused to join room %d", roomID)
	}

	c.io.Printf("Joined room %d\n", roomID)
	for _, member := range c.session.CurrentRoomMembers() {
		c.io.Printf("  %s (%d points)\n", member.Username, member.Tokens)
	}
	return nil
}

// runLeaveRoom выводит пользователя из текущей комнаты
func (c *Cli) runLeaveRoom(ctx context.Context) error {
	if err := c.ensureIdentity(ctx); err != nil {
		return err
	}

	roomID, inRoom := c.session.CurrentRoomID()
	if !inRoom {
		c.io.Println("Not in a room.")
		return nil
	}

	ok, err := c.session.LeaveRoomForUser(ctx, c.session.Identity())
	if err != nil {
		return fmt.Errorf("failed to leave room %d: %w", roomID, err)
	}
	if !ok {
		return fmt.Errorf("server refused to leave room %d", roomID)
	}

	c.io.Printf("Left room %d\n", roomID)
	return nil
}
