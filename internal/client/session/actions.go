package session

import (
	"context"
	"fmt"

	"github.com/dchistyakov/tipoff/internal/models"
)

// Мутирующие действия. Каждое зовет бекенд и, если результат успешен
// и действие касается активного identity, запускает foreground resync.
// Ошибка самого resync не возвращается: она оседает в поле Err снимка,
// вызывающий получает только ошибку мутации.

// CreateRoomForUser создает комнату от имени name
func (s *Service) CreateRoomForUser(ctx context.Context, name string) (*models.Room, error) {
	raw, err := s.gateway.CreateRoom(ctx, name)
	if err != nil {
		return nil, err
	}

	room := models.Room{ID: raw.ID, GameID: raw.GameID}
	if s.Identity() == name {
		_ = s.Resync(ctx, false)
	}
	return &room, nil
}

// JoinRoomForUser вводит name в комнату roomID
// При успехе текущая комната выставляется оптимистично, не дожидаясь
// завершения resync
func (s *Service) JoinRoomForUser(ctx context.Context, name string, roomID int) (bool, error) {
	ok, err := s.gateway.JoinRoom(ctx, name, roomID)
	if err != nil {
		return false, err
	}

	if ok && s.Identity() == name {
		s.mu.Lock()
		id := roomID
		s.state.RoomID = &id
		s.mu.Unlock()

		_ = s.Resync(ctx, false)
	}
	return ok, nil
}

// LeaveRoomForUser выводит name из его текущей комнаты
// При успехе текущая комната сбрасывается сразу же
func (s *Service) LeaveRoomForUser(ctx context.Context, name string) (bool, error) {
	ok, err := s.gateway.LeaveRoom(ctx, name)
	if err != nil {
		return false, err
	}

	if ok && s.Identity() == name {
		s.mu.Lock()
		s.state.RoomID = nil
		s.state.Questions = nil
		s.state.Current = nil
		s.seen = 0
		s.mu.Unlock()

		_ = s.Resync(ctx, false)
	}
	return ok, nil
}

// SendRequest отправляет заявку в друзья от from к to
func (s *Service) SendRequest(ctx context.Context, from, to string) error {
	if _, err := s.gateway.SendFriendRequest(ctx, from, to); err != nil {
		return err
	}
	s.resyncIfInvolved(ctx, from, to)
	return nil
}

// AcceptRequest принимает заявку от from, адресованную to
// Необратимо: после подтверждения сервером компенсирующего действия нет
func (s *Service) AcceptRequest(ctx context.Context, from, to string) error {
	if err := s.gateway.AcceptFriendRequest(ctx, from, to); err != nil {
		return err
	}
	s.resyncIfInvolved(ctx, from, to)
	return nil
}

// DeclineRequest отклоняет заявку от from, адресованную to
func (s *Service) DeclineRequest(ctx context.Context, from, to string) error {
	if err := s.gateway.DeclineFriendRequest(ctx, from, to); err != nil {
		return err
	}
	s.resyncIfInvolved(ctx, from, to)
	return nil
}

func (s *Service) resyncIfInvolved(ctx context.Context, from, to string) {
	identity := s.Identity()
	if identity != "" && (identity == from || identity == to) {
		_ = s.Resync(ctx, false)
	}
}

// UpdateUserTokens выставляет баланс пользователя name
// Для активного identity баланс обновляется локально сразу, не дожидаясь
// следующей синхронизации (авторитетное значение все равно перезапишет его)
func (s *Service) UpdateUserTokens(ctx context.Context, name string, tokens int) error {
	ok, err := s.gateway.UpdateUserTokens(ctx, name, tokens)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("server rejected token update for %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Username == name {
		s.state.Points = tokens
		if s.state.User != nil {
			s.state.User.Tokens = tokens
		}
	}
	return nil
}

// StartQuestionsForRoom начинает раунд вопросов в текущей комнате:
// очищает локальную очередь, приводит балансы всех участников к
// DefaultTokens и запускает серверный таймер выпуска вопросов.
// Сами вопросы придут только со следующим resync.
//
// Без текущей комнаты операция — no-op с предупреждением в логе.
func (s *Service) StartQuestionsForRoom(ctx context.Context) error {
	roomID, ok := s.CurrentRoomID()
	if !ok {
		s.logger.Warn("start questions requested without a room")
		return nil
	}

	members := s.CurrentRoomMembers()

	// Чистый лист: прошлые вопросы не должны пережить новый раунд
	s.mu.Lock()
	s.state.Questions = nil
	s.state.Current = nil
	s.seen = 0
	s.mu.Unlock()

	// Все участники стартуют с одинаковым балансом
	// Сбросы best effort: неудача по одному участнику не срывает раунд
	for _, member := range members {
		if member.Tokens == DefaultTokens {
			continue
		}
		if _, err := s.gateway.UpdateUserTokens(ctx, member.Username, DefaultTokens); err != nil {
			s.logger.Warn("failed to reset tokens",
				"username", member.Username,
				"error", err)
		}
	}

	return s.gateway.StartQuestionTimer(ctx, roomID)
}

// StartGame запускает игру в текущей комнате и помечает ее начатой
// Флаг started выставляется отдельным вызовом; его неудача не срывает старт
func (s *Service) StartGame(ctx context.Context) error {
	roomID, ok := s.CurrentRoomID()
	if !ok {
		return fmt.Errorf("not in a room")
	}
	if err := s.gateway.StartGame(ctx, roomID); err != nil {
		return err
	}
	if err := s.gateway.SetRoomStarted(ctx, roomID, true); err != nil {
		s.logger.Warn("failed to flag room as started",
			"room_id", roomID,
			"error", err)
	}
	return nil
}

// SettleWager разрешает ставку на текущий вопрос: правильный вариант
// возвращает ставку в двойном размере, неправильный списывает ее.
// Баланс обновляется оптимистично через UpdateUserTokens.
func (s *Service) SettleWager(ctx context.Context, pick, wager int) (bool, int, error) {
	s.mu.RLock()
	name := s.state.Username
	points := s.state.Points
	current := s.state.Current
	s.mu.RUnlock()

	if name == "" {
		return false, 0, fmt.Errorf("not logged in")
	}
	if current == nil {
		return false, 0, fmt.Errorf("no current question")
	}
	if pick < 0 || pick >= models.OptionCount {
		return false, 0, fmt.Errorf("pick %d out of range 0..%d", pick, models.OptionCount-1)
	}
	if wager < 0 || wager > points {
		return false, 0, fmt.Errorf("wager %d exceeds balance %d", wager, points)
	}

	won := pick == current.Answer
	balance := points - wager
	if won {
		balance = points + wager
	}

	if err := s.UpdateUserTokens(ctx, name, balance); err != nil {
		return won, points, err
	}
	return won, balance, nil
}
