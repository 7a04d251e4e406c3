package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dchistyakov/tipoff/pkg/api"
)

// GetUser получает пользователя по username
// Возвращает *api.StatusError со статусом 404, если пользователь не найден
func (c *Client) GetUser(ctx context.Context, username string) (*api.User, error) {
	var user api.User
	if err := c.get(ctx, "/user/"+url.PathEscape(username), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser регистрирует нового пользователя
func (c *Client) CreateUser(ctx context.Context, username string) (*api.User, error) {
	var user api.User
	if err := c.post(ctx, "/user/"+url.PathEscape(username), nil, &user); err != nil {
		return nil, fmt.Errorf("create user request failed: %w", err)
	}
	return &user, nil
}

// GetAllUsers возвращает всех известных системе пользователей
func (c *Client) GetAllUsers(ctx context.Context) ([]api.User, error) {
	var users []api.User
	if err := c.get(ctx, "/user/", &users); err != nil {
		return nil, fmt.Errorf("get all users request failed: %w", err)
	}
	return users, nil
}

// UpdateUserTokens выставляет баланс очков пользователя
func (c *Client) UpdateUserTokens(ctx context.Context, username string, tokens int) (bool, error) {
	path := fmt.Sprintf("/user/%s/tokens/%d", url.PathEscape(username), tokens)

	var ok bool
	if err := c.put(ctx, path, &ok); err != nil {
		return false, fmt.Errorf("update tokens request failed: %w", err)
	}
	return ok, nil
}
