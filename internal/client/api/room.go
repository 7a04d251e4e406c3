package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dchistyakov/tipoff/pkg/api"
)

// GetRooms возвращает все комнаты, известные системе
func (c *Client) GetRooms(ctx context.Context) ([]api.Room, error) {
	var rooms []api.Room
	if err := c.get(ctx, "/room", &rooms); err != nil {
		return nil, fmt.Errorf("get rooms request failed: %w", err)
	}
	return rooms, nil
}

// CreateRoom создает новую комнату от имени username
func (c *Client) CreateRoom(ctx context.Context, username string) (*api.Room, error) {
	query := url.Values{"username": {username}}

	var room api.Room
	if err := c.post(ctx, "/room/create", query, &room); err != nil {
		return nil, fmt.Errorf("create room request failed: %w", err)
	}
	return &room, nil
}

// JoinRoom добавляет username в комнату roomID
// Возвращает false, если сервер отказал во входе (комната заполнена и т.п.)
func (c *Client) JoinRoom(ctx context.Context, username string, roomID int) (bool, error) {
	query := url.Values{"username": {username}}

	var ok bool
	if err := c.post(ctx, fmt.Sprintf("/room/join/%d", roomID), query, &ok); err != nil {
		return false, fmt.Errorf("join room request failed: %w", err)
	}
	return ok, nil
}

// LeaveRoom убирает username из его текущей комнаты
func (c *Client) LeaveRoom(ctx context.Context, username string) (bool, error) {
	var ok bool
	if err := c.post(ctx, "/room/leave/"+url.PathEscape(username), nil, &ok); err != nil {
		return false, fmt.Errorf("leave room request failed: %w", err)
	}
	return ok, nil
}

// StartGame запускает игру в комнате roomID
func (c *Client) StartGame(ctx context.Context, roomID int) error {
	if err := c.post(ctx, fmt.Sprintf("/room/start/%d", roomID), nil, nil); err != nil {
		return fmt.Errorf("start game request failed: %w", err)
	}
	return nil
}

// SetRoomStarted переключает флаг готовности комнаты
func (c *Client) SetRoomStarted(ctx context.Context, roomID int, started bool) error {
	path := fmt.Sprintf("/room/%d/started/%t", roomID, started)

	if err := c.put(ctx, path, nil); err != nil {
		return fmt.Errorf("set room started failed: %w", err)
	}
	return nil
}
