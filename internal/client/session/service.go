// Package session владеет всем межэкранным состоянием игры для одного
// залогиненного пользователя и поддерживает его консистентность с бекендом:
// периодический опрос плюс явные мутации с повторной синхронизацией.
package session

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/dchistyakov/tipoff/internal/models"
	"github.com/dchistyakov/tipoff/pkg/api"
)

//go:generate moq -out gateway_mock.go . Gateway

// Gateway описывает операции игрового бекенда, используемые сессией
// Реализуется client/api.Client; в тестах подменяется moq-моком
type Gateway interface {
	GetUser(ctx context.Context, username string) (*api.User, error)
	CreateUser(ctx context.Context, username string) (*api.User, error)
	GetAllUsers(ctx context.Context) ([]api.User, error)
	UpdateUserTokens(ctx context.Context, username string, tokens int) (bool, error)
	GetFriends(ctx context.Context, username string) ([]api.User, error)
	GetIncomingRequests(ctx context.Context, username string) ([]api.User, error)
	SendFriendRequest(ctx context.Context, from, to string) (*api.FriendRequest, error)
	AcceptFriendRequest(ctx context.Context, from, to string) error
	DeclineFriendRequest(ctx context.Context, from, to string) error
	GetRooms(ctx context.Context) ([]api.Room, error)
	CreateRoom(ctx context.Context, username string) (*api.Room, error)
	JoinRoom(ctx context.Context, username string, roomID int) (bool, error)
	LeaveRoom(ctx context.Context, username string) (bool, error)
	StartGame(ctx context.Context, roomID int) error
	SetRoomStarted(ctx context.Context, roomID int, started bool) error
	GetQuestions(ctx context.Context, roomID int) ([]api.Question, error)
	StartQuestionTimer(ctx context.Context, roomID int) error
}

const (
	// DefaultPollInterval интервал фонового опроса бекенда
	DefaultPollInterval = 5 * time.Second

	// DefaultTokens стартовый баланс очков, к которому приводятся
	// все участники комнаты перед началом раунда
	DefaultTokens = 200

	// AvatarCount размер палитры аватаров; аватар пользователя —
	// его позиция в отсортированном глобальном списке по модулю палитры
	AvatarCount = 8
)

// State единый снимок состояния сессии
// Все коллекции замещаются целиком при каждой успешной синхронизации;
// неудачная синхронизация оставляет предыдущий снимок нетронутым
type State struct {
	Username  string            // активный username, "" — не залогинен
	User      *models.User      // авторитетная запись пользователя
	Friends   []models.User     // подтвержденные друзья
	Requests  []models.User     // входящие заявки в друзья
	Rooms     []models.Room     // все комнаты системы
	AllUsers  []models.User     // глобальный реестр пользователей
	Questions []models.Question // очередь вопросов текущей комнаты
	Current   *models.Question  // последний еще не показанный вопрос
	RoomID    *int              // id текущей комнаты, nil — не в комнате
	Points    int               // локальный баланс очков
	Err       string            // сообщение последней ошибки синхронизации
	Loading   bool              // выставляется только foreground-синхронизацией
}

// Service является единственным владельцем состояния сессии:
// координирует опрос и мутации, выводит состав комнаты и текущий вопрос
// из сырых коллекций бекенда
type Service struct {
	gateway Gateway
	clock   clockwork.Clock
	logger  *slog.Logger

	mu           sync.RWMutex
	state        State
	seen         int    // курсор: сколько вопросов очереди уже наблюдалось
	seq          uint64 // номер последнего запущенного resync
	applied      uint64 // номер последнего применённого resync
	stopPoll     context.CancelFunc
	pollInterval time.Duration
}

// NewService создает новый сервис сессии
// В проде clock — clockwork.NewRealClock(), в тестах — fake clock
func NewService(gateway Gateway, clock clockwork.Clock, logger *slog.Logger) *Service {
	return &Service{
		gateway:      gateway,
		clock:        clock,
		logger:       logger,
		pollInterval: DefaultPollInterval,
	}
}

// SetPollInterval меняет интервал фонового опроса
// Действует на следующий запуск цикла опроса
func (s *Service) SetPollInterval(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pollInterval = interval
}

// SetIdentity устанавливает активный username
// Пустое имя — logout: опрос останавливается, состояние очищается.
// Непустое имя запускает первичную синхронизацию (синхронно, ошибка
// оседает в поле Err) и фоновый опрос.
func (s *Service) SetIdentity(ctx context.Context, name string) {
	s.mu.Lock()
	if s.stopPoll != nil {
		s.stopPoll()
		s.stopPoll = nil
	}

	// Полный сброс: и при logout, и при смене пользователя
	s.state = State{Username: name}
	s.seen = 0
	s.mu.Unlock()

	if name == "" {
		return
	}

	if err := s.Resync(ctx, false); err != nil {
		s.logger.Warn("initial resync failed", "username", name, "error", err)
	}
	s.startPolling()
}

// Identity возвращает активный username ("" — не залогинен)
func (s *Service) Identity() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Username
}

// Snapshot возвращает копию текущего состояния сессии
// Слайсы копируются: снимок безопасно читать после возврата
func (s *Service) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.state
	snap.Friends = append([]models.User(nil), s.state.Friends...)
	snap.Requests = append([]models.User(nil), s.state.Requests...)
	snap.Rooms = append([]models.Room(nil), s.state.Rooms...)
	snap.AllUsers = append([]models.User(nil), s.state.AllUsers...)
	snap.Questions = append([]models.Question(nil), s.state.Questions...)
	if s.state.User != nil {
		user := *s.state.User
		snap.User = &user
	}
	if s.state.Current != nil {
		current := *s.state.Current
		snap.Current = &current
	}
	if s.state.RoomID != nil {
		roomID := *s.state.RoomID
		snap.RoomID = &roomID
	}
	return snap
}

// Err возвращает сообщение последней ошибки синхронизации ("" — ошибок нет)
func (s *Service) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Err
}

// Points возвращает локальный баланс очков
func (s *Service) Points() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Points
}

// CurrentRoomID возвращает id текущей комнаты (ok=false — не в комнате)
func (s *Service) CurrentRoomID() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.RoomID == nil {
		return 0, false
	}
	return *s.state.RoomID, true
}

// CurrentQuestion возвращает последний пришедший и еще актуальный вопрос
func (s *Service) CurrentQuestion() *models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Current == nil {
		return nil
	}
	current := *s.state.Current
	return &current
}

// CurrentRoomMembers возвращает состав текущей комнаты:
// подмножество глобального реестра с room_id текущей комнаты.
// Аватар — позиция пользователя в отсортированном реестре по модулю палитры.
// Состав всегда вычисляется заново и нигде не мутируется напрямую.
func (s *Service) CurrentRoomMembers() []models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.RoomID == nil {
		return nil
	}
	roomID := *s.state.RoomID

	sorted := append([]models.User(nil), s.state.AllUsers...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Username < sorted[j].Username
	})

	var members []models.Member
	for i, user := range sorted {
		if user.InRoom(roomID) {
			members = append(members, models.Member{User: user, Avatar: i % AvatarCount})
		}
	}
	return members
}
