package session

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchistyakov/tipoff/pkg/api"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
}

func intPtr(i int) *int {
	return &i
}

// backendState изменяемое состояние фейкового бекенда
// Тесты правят его между синхронизациями, имитируя других участников
type backendState struct {
	mu        sync.Mutex
	user      api.User
	friends   []api.User
	requests  []api.User
	allUsers  []api.User
	rooms     []api.Room
	questions []api.Question
}

// newBackendMock собирает GatewayMock поверх backendState
// Отдельные методы переопределяются в тестах переприсваиванием полей
func newBackendMock(state *backendState) *GatewayMock {
	return &GatewayMock{
		GetUserFunc: func(ctx context.Context, username string) (*api.User, error) {
			state.mu.Lock()
			defer state.mu.Unlock()
			user := state.user
			return &user, nil
		},
		CreateUserFunc: func(ctx context.Context, username string) (*api.User, error) {
			state.mu.Lock()
			defer state.mu.Unlock()
			user := state.user
			return &user, nil
		},
		GetAllUsersFunc: func(ctx context.Context) ([]api.User, error) {
			state.mu.Lock()
			defer state.mu.Unlock()
			return append([]api.User(nil), state.allUsers...), nil
		},
		GetFriendsFunc: func(ctx context.Context, username string) ([]api.User, error) {
			state.mu.Lock()
			defer state.mu.Unlock()
			return append([]api.User(nil), state.friends...), nil
		},
		GetIncomingRequestsFunc: func(ctx context.Context, username string) ([]api.User, error) {
			state.mu.Lock()
			defer state.mu.Unlock()
			return append([]api.User(nil), state.requests...), nil
		},
		GetRoomsFunc: func(ctx context.Context) ([]api.Room, error) {
			state.mu.Lock()
			defer state.mu.Unlock()
			return append([]api.Room(nil), state.rooms...), nil
		},
		GetQuestionsFunc: func(ctx context.Context, roomID int) ([]api.Question, error) {
			state.mu.Lock()
			defer state.mu.Unlock()
			return append([]api.Question(nil), state.questions...), nil
		},
		UpdateUserTokensFunc: func(ctx context.Context, username string, tokens int) (bool, error) {
			return true, nil
		},
		StartQuestionTimerFunc: func(ctx context.Context, roomID int) error {
			return nil
		},
		StartGameFunc: func(ctx context.Context, roomID int) error {
			return nil
		},
		SetRoomStartedFunc: func(ctx context.Context, roomID int, started bool) error {
			return nil
		},
	}
}

func newTestService(mock *GatewayMock) *Service {
	return NewService(mock, clockwork.NewFakeClock(), newTestLogger())
}

func TestResync_ReplacesCollections(t *testing.T) {
	state := &backendState{
		user:     api.User{Username: "alice", Tokens: 250},
		friends:  []api.User{{Username: "bob", Tokens: 200}},
		requests: []api.User{{Username: "carol", Tokens: 200}},
		allUsers: []api.User{{Username: "alice", Tokens: 250}, {Username: "bob", Tokens: 200}},
		rooms:    []api.Room{{ID: 1, GameID: 42}},
	}
	mock := newBackendMock(state)
	service := newTestService(mock)

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	snap := service.Snapshot()
	assert.Equal(t, "alice", snap.Username)
	require.NotNil(t, snap.User)
	assert.Equal(t, 250, snap.Points)
	assert.Len(t, snap.Friends, 1)
	assert.Equal(t, "bob", snap.Friends[0].Username)
	assert.Len(t, snap.Requests, 1)
	assert.Len(t, snap.Rooms, 1)
	assert.Len(t, snap.AllUsers, 2)
	assert.Nil(t, snap.RoomID)
	assert.Empty(t, snap.Err)
	assert.False(t, snap.Loading)

	// Бекенд поменялся — следующий resync замещает коллекции целиком
	state.mu.Lock()
	state.friends = []api.User{{Username: "dave", Tokens: 200}}
	state.mu.Unlock()

	require.NoError(t, service.Resync(ctx, false))

	snap = service.Snapshot()
	require.Len(t, snap.Friends, 1)
	assert.Equal(t, "dave", snap.Friends[0].Username)
}

func TestResync_Idempotent(t *testing.T) {
	state := &backendState{
		user:     api.User{Username: "alice", RoomID: intPtr(3), Tokens: 200},
		allUsers: []api.User{{Username: "alice", RoomID: intPtr(3), Tokens: 200}},
		rooms:    []api.Room{{ID: 3, GameID: 7}},
	}
	service := newTestService(newBackendMock(state))

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	// Два resync подряд без изменений на бекенде дают одинаковый снимок
	require.NoError(t, service.Resync(ctx, false))
	first := service.Snapshot()

	require.NoError(t, service.Resync(ctx, false))
	second := service.Snapshot()

	assert.Equal(t, first, second)
}

func TestResync_GetOrCreate(t *testing.T) {
	state := &backendState{
		user: api.User{Username: "newbie", Tokens: 200},
	}
	mock := newBackendMock(state)

	// Первый вход: GET отвечает 404, пользователь создается
	mock.GetUserFunc = func(ctx context.Context, username string) (*api.User, error) {
		return nil, &api.StatusError{Status: 404, Detail: "user not found"}
	}

	service := newTestService(mock)
	ctx := context.Background()
	service.SetIdentity(ctx, "newbie")
	defer service.StopPolling()

	assert.Empty(t, service.Err())
	require.Len(t, mock.CreateUserCalls(), 1)
	assert.Equal(t, "newbie", mock.CreateUserCalls()[0].Username)

	snap := service.Snapshot()
	require.NotNil(t, snap.User)
	assert.Equal(t, "newbie", snap.User.Username)
}

func TestResync_NonNotFoundErrorPropagates(t *testing.T) {
	mock := newBackendMock(&backendState{})
	mock.GetUserFunc = func(ctx context.Context, username string) (*api.User, error) {
		return nil, &api.StatusError{Status: 500, Detail: "boom"}
	}

	service := newTestService(mock)
	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	// 500 не является поводом создавать пользователя
	assert.Empty(t, mock.CreateUserCalls())
	assert.Contains(t, service.Err(), "boom")
}

func TestResync_FailureKeepsPreviousSnapshot(t *testing.T) {
	state := &backendState{
		user:    api.User{Username: "alice", Tokens: 200},
		friends: []api.User{{Username: "bob", Tokens: 200}},
		rooms:   []api.Room{{ID: 1, GameID: 5}},
	}
	mock := newBackendMock(state)
	service := newTestService(mock)

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	before := service.Snapshot()
	require.Len(t, before.Friends, 1)

	// Бекенд падает: снимок не трогаем, ошибку записываем
	mock.GetRoomsFunc = func(ctx context.Context) ([]api.Room, error) {
		return nil, &api.StatusError{Status: 503, Detail: "maintenance"}
	}

	err := service.Resync(ctx, false)
	require.Error(t, err)

	after := service.Snapshot()
	assert.Equal(t, before.Friends, after.Friends)
	assert.Equal(t, before.Rooms, after.Rooms)
	assert.Equal(t, before.Points, after.Points)
	assert.Contains(t, after.Err, "maintenance")

	// Транспортная ошибка без серверного сообщения сворачивается в общую
	mock.GetRoomsFunc = func(ctx context.Context) ([]api.Room, error) {
		return nil, context.DeadlineExceeded
	}
	require.Error(t, service.Resync(ctx, false))
	assert.Equal(t, genericSyncError, service.Err())

	// Успешный resync очищает ошибку
	mock.GetRoomsFunc = func(ctx context.Context) ([]api.Room, error) {
		return []api.Room{{ID: 1, GameID: 5}}, nil
	}
	require.NoError(t, service.Resync(ctx, false))
	assert.Empty(t, service.Err())
}

func TestResync_QuestionArrival(t *testing.T) {
	roomID := 7
	state := &backendState{
		user:     api.User{Username: "alice", RoomID: intPtr(roomID), Tokens: 200},
		allUsers: []api.User{{Username: "alice", RoomID: intPtr(roomID), Tokens: 200}},
		rooms:    []api.Room{{ID: roomID, GameID: 1}},
	}
	service := newTestService(newBackendMock(state))

	ctx := context.Background()
	// Первый resync узнает о комнате, второй уже запрашивает вопросы
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	require.NoError(t, service.Resync(ctx, false))
	assert.Nil(t, service.CurrentQuestion())

	// Выпущены три вопроса: текущим становится последний
	state.mu.Lock()
	state.questions = []api.Question{
		{ID: 1, RoomID: roomID, Question: "q1", Options: "a_b_c_d", Answer: 1},
		{ID: 2, RoomID: roomID, Question: "q2", Options: "a_b_c_d", Answer: 2},
		{ID: 3, RoomID: roomID, Question: "Who will make the first three-pointer of the game?", Options: "LeBron_Tatum_White_Russell", Answer: 3},
	}
	state.mu.Unlock()

	require.NoError(t, service.Resync(ctx, false))

	current := service.CurrentQuestion()
	require.NotNil(t, current)
	assert.Equal(t, 3, current.ID)
	assert.Equal(t, [4]string{"LeBron", "Tatum", "White", "Russell"}, current.Options)
	assert.Equal(t, 2, current.Answer) // 1-индексированный ответ 3 -> индекс 2

	// Очередь не выросла — повторный resync не триггерит показ заново
	require.NoError(t, service.Resync(ctx, false))
	current = service.CurrentQuestion()
	require.NotNil(t, current)
	assert.Equal(t, 3, current.ID)

	// Очередь выросла до четырех — ровно один новый текущий вопрос
	state.mu.Lock()
	state.questions = append(state.questions, api.Question{
		ID: 4, RoomID: roomID, Question: "q4", Options: "w_x_y_z", Answer: 4,
	})
	state.mu.Unlock()

	require.NoError(t, service.Resync(ctx, false))
	current = service.CurrentQuestion()
	require.NotNil(t, current)
	assert.Equal(t, 4, current.ID)

	// Укоротившаяся очередь показа не триггерит
	state.mu.Lock()
	state.questions = state.questions[:2]
	state.mu.Unlock()

	require.NoError(t, service.Resync(ctx, false))
	current = service.CurrentQuestion()
	require.NotNil(t, current)
	assert.Equal(t, 4, current.ID)
}

func TestCurrentRoomMembers(t *testing.T) {
	roomID := 2
	state := &backendState{
		user: api.User{Username: "carol", RoomID: intPtr(roomID), Tokens: 200},
		allUsers: []api.User{
			{Username: "walt", RoomID: intPtr(roomID), Tokens: 150},
			{Username: "alice", RoomID: intPtr(roomID), Tokens: 200},
			{Username: "bob", RoomID: intPtr(1), Tokens: 200},
			{Username: "carol", RoomID: intPtr(roomID), Tokens: 300},
			{Username: "dave", Tokens: 200},
		},
		rooms: []api.Room{{ID: 1, GameID: 1}, {ID: roomID, GameID: 1}},
	}
	service := newTestService(newBackendMock(state))

	ctx := context.Background()
	service.SetIdentity(ctx, "carol")
	defer service.StopPolling()

	// Состав комнаты — подмножество глобального реестра с нужным room_id
	members := service.CurrentRoomMembers()
	require.Len(t, members, 3)
	assert.Equal(t, "alice", members[0].Username)
	assert.Equal(t, "carol", members[1].Username)
	assert.Equal(t, "walt", members[2].Username)

	// Аватар — позиция в отсортированном реестре по модулю палитры:
	// alice=0, bob=1, carol=2, dave=3, walt=4
	assert.Equal(t, 0, members[0].Avatar)
	assert.Equal(t, 2, members[1].Avatar)
	assert.Equal(t, 4, members[2].Avatar)

	// Вне комнаты состав пуст
	service.SetIdentity(ctx, "")
	assert.Nil(t, service.CurrentRoomMembers())
}

func TestResync_StaleResponseDiscarded(t *testing.T) {
	state := &backendState{
		user: api.User{Username: "alice", Tokens: 500},
	}
	mock := newBackendMock(state)
	service := newTestService(mock)

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	// Первый (медленный) resync завис на GetUser и вернет устаревший баланс
	release := make(chan struct{})
	started := make(chan struct{})
	var once sync.Once
	mock.GetUserFunc = func(ctx context.Context, username string) (*api.User, error) {
		once.Do(func() {
			close(started)
			<-release
		})
		state.mu.Lock()
		defer state.mu.Unlock()
		user := state.user
		return &user, nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = service.Resync(ctx, true)
	}()
	<-started

	// Пока медленный resync висит, быстрый успевает примениться
	require.NoError(t, service.Resync(ctx, false))
	assert.Equal(t, 500, service.Points())

	// Отпускаем медленный: его ответ (с балансом 100) должен быть отброшен
	state.mu.Lock()
	state.user.Tokens = 100
	state.mu.Unlock()
	close(release)
	wg.Wait()

	assert.Equal(t, 500, service.Points())
}

func TestSetIdentity_ClearResetsState(t *testing.T) {
	state := &backendState{
		user:    api.User{Username: "alice", RoomID: intPtr(1), Tokens: 300},
		friends: []api.User{{Username: "bob", Tokens: 200}},
	}
	service := newTestService(newBackendMock(state))

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	require.NotEmpty(t, service.Snapshot().Friends)

	service.SetIdentity(ctx, "")

	snap := service.Snapshot()
	assert.Empty(t, snap.Username)
	assert.Nil(t, snap.User)
	assert.Empty(t, snap.Friends)
	assert.Empty(t, snap.Requests)
	assert.Empty(t, snap.Rooms)
	assert.Nil(t, snap.RoomID)
	assert.Zero(t, snap.Points)
	assert.Empty(t, snap.Err)
}
