package session

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/dchistyakov/tipoff/internal/models"
	"github.com/dchistyakov/tipoff/pkg/api"
)

// genericSyncError показывается, когда у ошибки нет серверного сообщения
const genericSyncError = "failed to reach the server"

// snapshot сырые результаты одной синхронизации до применения к состоянию
type snapshot struct {
	user      *models.User
	friends   []models.User
	requests  []models.User
	allUsers  []models.User
	rooms     []models.Room
	questions []models.Question
}

// Resync выполняет полную пересинхронизацию с бекендом
// Все коллекции запрашиваются параллельно и при успехе замещают
// предыдущий снимок атомарно. При ошибке снимок не трогается,
// человекочитаемое сообщение оседает в поле Err.
//
// background=true (тик опроса) не трогает индикатор Loading.
//
// Ответы, завершившиеся после более нового resync или после смены
// identity, отбрасываются: применяется только самый свежий запуск.
func (s *Service) Resync(ctx context.Context, background bool) error {
	s.mu.Lock()
	name := s.state.Username
	if name == "" {
		s.mu.Unlock()
		return nil
	}

	s.seq++
	seq := s.seq

	var roomID *int
	if s.state.RoomID != nil {
		id := *s.state.RoomID
		roomID = &id
	}
	if !background {
		s.state.Loading = true
	}
	s.mu.Unlock()

	snap, err := s.fetchAll(ctx, name, roomID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !background {
		s.state.Loading = false
	}

	// Охрана от устаревших ответов: identity сменилась или уже
	// применен результат более нового запуска
	if s.state.Username != name || seq <= s.applied {
		s.logger.Debug("discarding stale resync", "seq", seq, "applied", s.applied)
		return nil
	}

	if err != nil {
		s.logger.Warn("resync failed", "username", name, "error", err)
		s.state.Err = syncErrorMessage(err)
		return err
	}

	s.applied = seq
	s.apply(snap)
	return nil
}

// fetchAll забирает все коллекции сессии параллельно
// Вопросы запрашиваются только если пользователь состоит в комнате
func (s *Service) fetchAll(ctx context.Context, name string, roomID *int) (*snapshot, error) {
	snap := &snapshot{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := s.resolveUser(ctx, name)
		if err != nil {
			return err
		}
		snap.user = user
		return nil
	})
	g.Go(func() error {
		friends, err := s.gateway.GetFriends(ctx, name)
		if err != nil {
			return err
		}
		snap.friends = toUsers(friends)
		return nil
	})
	g.Go(func() error {
		requests, err := s.gateway.GetIncomingRequests(ctx, name)
		if err != nil {
			return err
		}
		snap.requests = toUsers(requests)
		return nil
	})
	g.Go(func() error {
		rooms, err := s.gateway.GetRooms(ctx)
		if err != nil {
			return err
		}
		snap.rooms = toRooms(rooms)
		return nil
	})
	g.Go(func() error {
		users, err := s.gateway.GetAllUsers(ctx)
		if err != nil {
			return err
		}
		snap.allUsers = toUsers(users)
		return nil
	})

	if roomID != nil {
		id := *roomID
		g.Go(func() error {
			raw, err := s.gateway.GetQuestions(ctx, id)
			if err != nil {
				return err
			}
			questions, err := toQuestions(raw)
			if err != nil {
				return err
			}
			snap.questions = questions
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// resolveUser получает пользователя по схеме get-or-create:
// 404 на чтении означает первый вход — пользователь создается
func (s *Service) resolveUser(ctx context.Context, name string) (*models.User, error) {
	raw, err := s.gateway.GetUser(ctx, name)
	if err != nil {
		if !api.IsNotFound(err) {
			return nil, err
		}
		s.logger.Info("user not found, creating", "username", name)
		raw, err = s.gateway.CreateUser(ctx, name)
		if err != nil {
			return nil, err
		}
	}
	user := toUser(raw)
	return &user, nil
}

// apply атомарно применяет снимок; вызывается строго под s.mu
func (s *Service) apply(snap *snapshot) {
	prevRoomID := s.state.RoomID

	s.state.User = snap.user
	s.state.Friends = snap.friends
	s.state.Requests = snap.requests
	s.state.Rooms = snap.rooms
	s.state.AllUsers = snap.allUsers
	s.state.Err = ""

	// Авторитетная запись пользователя обновляет комнату и баланс:
	// последняя запись побеждает, оптимистичные значения перезаписываются
	if snap.user != nil {
		if snap.user.RoomID != nil {
			id := *snap.user.RoomID
			s.state.RoomID = &id
		} else {
			s.state.RoomID = nil
		}
		s.state.Points = snap.user.Tokens
	}

	// Смена комнаты обнуляет очередь вопросов вместе с курсором:
	// вопросы чужой комнаты не должны ни показываться, ни двигать курсор
	if !sameRoom(prevRoomID, s.state.RoomID) {
		s.state.Questions = nil
		s.state.Current = nil
		s.seen = 0
		return
	}

	s.state.Questions = snap.questions
	s.observeQuestions()
}

// observeQuestions детектор новых вопросов; вызывается строго под s.mu
// Если очередь выросла относительно курсора, последний вопрос становится
// текущим и курсор двигается к новой длине. Неизменившаяся или
// укоротившаяся очередь показа не триггерит.
func (s *Service) observeQuestions() {
	count := len(s.state.Questions)
	if count <= s.seen {
		return
	}

	question := s.state.Questions[count-1]
	s.state.Current = &question
	s.seen = count

	s.logger.Info("new question arrived",
		"question_id", question.ID,
		"queue_len", count)
}

func sameRoom(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// syncErrorMessage переводит ошибку синхронизации в сообщение для UI
// Серверные ошибки несут свой текст, транспортные сворачиваются в общий
func syncErrorMessage(err error) string {
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Error()
	}
	return genericSyncError
}

// Конвертация wire-типов бекенда в доменные

func toUser(raw *api.User) models.User {
	user := models.User{Username: raw.Username, Tokens: raw.Tokens}
	if raw.RoomID != nil {
		id := *raw.RoomID
		user.RoomID = &id
	}
	return user
}

func toUsers(raw []api.User) []models.User {
	users := make([]models.User, 0, len(raw))
	for i := range raw {
		users = append(users, toUser(&raw[i]))
	}
	return users
}

func toRooms(raw []api.Room) []models.Room {
	rooms := make([]models.Room, 0, len(raw))
	for _, r := range raw {
		rooms = append(rooms, models.Room{ID: r.ID, GameID: r.GameID})
	}
	return rooms
}

func toQuestions(raw []api.Question) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(raw))
	for _, q := range raw {
		options, err := models.SplitOptions(q.Options)
		if err != nil {
			return nil, err
		}
		answer, err := models.ParseAnswer(q.Answer)
		if err != nil {
			return nil, err
		}
		questions = append(questions, models.Question{
			ID:      q.ID,
			RoomID:  q.RoomID,
			Text:    q.Question,
			Options: options,
			Answer:  answer,
		})
	}
	return questions, nil
}
