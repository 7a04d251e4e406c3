package cli

import (
	"context"
	"fmt"

	"github.com/dchistyakov/tipoff/internal/models"
)

// runGame запускает игру в текущей комнате: старт игры, выравнивание
// балансов участников и запуск серверного таймера выпуска вопросов
func (c *Cli) runGame(ctx context.Context) error {
	if err := c.ensureIdentity(ctx); err != nil {
		return err
	}

	roomID, inRoom := c.session.CurrentRoomID()
	if !inRoom {
		return fmt.Errorf("not in a room. Use 'tipoff join <room-id>' first")
	}

	if err := c.session.StartGame(ctx); err != nil {
		return fmt.Errorf("failed to start the game: %w", err)
	}
	if err := c.session.StartQuestionsForRoom(ctx); err != nil {
		return fmt.Errorf("failed to start questions: %w", err)
	}

	c.io.Printf("Game started in room %d\n", roomID)
	c.io.Println("Run 'tipoff play' to answer questions.")
	return nil
}

// runPlay крутит интерактивный цикл раунда: показывает свежий вопрос,
// принимает вариант и ставку, разрешает ставку и печатает результат
func (c *Cli) runPlay(ctx context.Context) error {
	if err := c.ensureIdentity(ctx); err != nil {
		return err
	}

	if _, inRoom := c.session.CurrentRoomID(); !inRoom {
		return fmt.Errorf("not in a room. Use 'tipoff join <room-id>' first")
	}

	c.io.Println("Waiting for questions. Press Enter to check, 'q' to quit.")

	// Вопрос не показывается повторно: запоминаем id последнего показанного
	lastShown := 0
	for {
		input, err := c.io.ReadInput("> ")
		if err != nil {
			return err
		}
		if input == "q" || input == "quit" {
			c.io.Printf("Final balance: %d points\n", c.session.Points())
			return nil
		}

		if err := c.session.Resync(ctx, false); err != nil {
			c.io.Printf("Sync failed: %s\n", c.session.Err())
			continue
		}

		question := c.session.CurrentQuestion()
		if question == nil || question.ID == lastShown {
			c.io.Println("No new question yet.")
			continue
		}
		lastShown = question.ID

		if err := c.playQuestion(ctx, question); err != nil {
			c.io.Printf("Error: %v\n", err)
		}
	}
}

func (c *Cli) playQuestion(ctx context.Context, question *models.Question) error {
	c.io.Println()
	c.io.Printf("Q: %s\n", question.Text)
	for i, option := range question.Options {
		c.io.Printf("  %d. %s\n", i+1, option)
	}

	pick, err := c.io.ReadInt(fmt.Sprintf("Answer (1-%d): ", models.OptionCount))
	if err != nil {
		return err
	}
	if pick < 1 || pick > models.OptionCount {
		return fmt.Errorf("answer must be between 1 and %d", models.OptionCount)
	}

	wager, err := c.io.ReadInt(fmt.Sprintf("Wager (balance %d): ", c.session.Points()))
	if err != nil {
		return err
	}

	won, balance, err := c.session.SettleWager(ctx, pick-1, wager)
	if err != nil {
		return err
	}

	if won {
		c.io.Printf("Correct! You won %d points.\n", wager)
	} else {
		c.io.Printf("Wrong. The correct answer was %q. You lost %d points.\n",
			question.Options[question.Answer], wager)
	}
	c.io.Printf("Balance: %d points\n", balance)
	return nil
}
