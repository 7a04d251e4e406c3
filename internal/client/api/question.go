package api

import (
	"context"
	"fmt"

	"github.com/dchistyakov/tipoff/pkg/api"
)

// GetQuestions возвращает все вопросы, выпущенные для комнаты roomID
// Список только растет: новые вопросы дописываются в конец
func (c *Client) GetQuestions(ctx context.Context, roomID int) ([]api.Question, error) {
	var questions []api.Question
	if err := c.get(ctx, fmt.Sprintf("/questionfr/%d", roomID), &questions); err != nil {
		return nil, fmt.Errorf("get questions request failed: %w", err)
	}
	return questions, nil
}

// StartQuestionTimer запускает на сервере таймер выпуска вопросов для комнаты
func (c *Client) StartQuestionTimer(ctx context.Context, roomID int) error {
	if err := c.post(ctx, fmt.Sprintf("/questionfr/start-timer/%d", roomID), nil, nil); err != nil {
		return fmt.Errorf("start question timer failed: %w", err)
	}
	return nil
}
