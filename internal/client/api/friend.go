package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dchistyakov/tipoff/pkg/api"
)

// GetFriends возвращает подтвержденных друзей пользователя
func (c *Client) GetFriends(ctx context.Context, username string) ([]api.User, error) {
	var friends []api.User
	if err := c.get(ctx, "/"+url.PathEscape(username)+"/friends", &friends); err != nil {
		return nil, fmt.Errorf("get friends request failed: %w", err)
	}
	return friends, nil
}

// GetIncomingRequests возвращает входящие заявки в друзья
func (c *Client) GetIncomingRequests(ctx context.Context, username string) ([]api.User, error) {
	var requests []api.User
	if err := c.get(ctx, "/"+url.PathEscape(username)+"/request", &requests); err != nil {
		return nil, fmt.Errorf("get incoming requests failed: %w", err)
	}
	return requests, nil
}

// SendFriendRequest отправляет заявку в друзья от from к to
func (c *Client) SendFriendRequest(ctx context.Context, from, to string) (*api.FriendRequest, error) {
	path := "/" + url.PathEscape(from) + "/request/" + url.PathEscape(to)

	var request api.FriendRequest
	if err := c.post(ctx, path, nil, &request); err != nil {
		return nil, fmt.Errorf("send friend request failed: %w", err)
	}
	return &request, nil
}

// AcceptFriendRequest принимает заявку от from, адресованную to
func (c *Client) AcceptFriendRequest(ctx context.Context, from, to string) error {
	path := "/" + url.PathEscape(to) + "/accept/" + url.PathEscape(from)

	if err := c.post(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("accept friend request failed: %w", err)
	}
	return nil
}

// DeclineFriendRequest отклоняет заявку от from, адресованную to
// Операция необратима: после подтверждения сервером заявка удаляется
func (c *Client) DeclineFriendRequest(ctx context.Context, from, to string) error {
	path := "/" + url.PathEscape(to) + "/decline/" + url.PathEscape(from)

	if err := c.post(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("decline friend request failed: %w", err)
	}
	return nil
}
