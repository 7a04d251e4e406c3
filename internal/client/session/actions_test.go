package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchistyakov/tipoff/pkg/api"
)

func TestJoinRoomForUser_OptimisticRoomID(t *testing.T) {
	state := &backendState{
		user: api.User{Username: "alice", Tokens: 200},
	}
	mock := newBackendMock(state)
	mock.JoinRoomFunc = func(ctx context.Context, username string, roomID int) (bool, error) {
		return true, nil
	}

	service := newTestService(mock)
	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	// Resync после join падает: комната все равно выставлена оптимистично,
	// не дожидаясь авторитетного снимка
	mock.GetUserFunc = func(ctx context.Context, username string) (*api.User, error) {
		return nil, &api.StatusError{Status: 503}
	}

	ok, err := service.JoinRoomForUser(ctx, "alice", 7)
	require.NoError(t, err)
	assert.True(t, ok)

	roomID, inRoom := service.CurrentRoomID()
	require.True(t, inRoom)
	assert.Equal(t, 7, roomID)
}

func TestJoinRoomForUser_OtherIdentityNoResync(t *testing.T) {
	mock := newBackendMock(&backendState{
		user: api.User{Username: "alice", Tokens: 200},
	})
	mock.JoinRoomFunc = func(ctx context.Context, username string, roomID int) (bool, error) {
		return true, nil
	}

	service := newTestService(mock)
	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	baseline := len(mock.GetUserCalls())

	// Вход чужого пользователя не трогает ни комнату, ни синхронизацию
	ok, err := service.JoinRoomForUser(ctx, "bob", 7)
	require.NoError(t, err)
	assert.True(t, ok)

	_, inRoom := service.CurrentRoomID()
	assert.False(t, inRoom)
	assert.Len(t, mock.GetUserCalls(), baseline)
}

func TestJoinRoomForUser_RefusedNoRoomChange(t *testing.T) {
	mock := newBackendMock(&backendState{
		user: api.User{Username: "alice", Tokens: 200},
	})
	mock.JoinRoomFunc = func(ctx context.Context, username string, roomID int) (bool, error) {
		return false, nil
	}

	service := newTestService(mock)
	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	ok, err := service.JoinRoomForUser(ctx, "alice", 7)
	require.NoError(t, err)
	assert.False(t, ok)

	_, inRoom := service.CurrentRoomID()
	assert.False(t, inRoom)
}

func TestLeaveRoomForUser_ClearsRoomAndQuestions(t *testing.T) {
	roomID := 4
	state := &backendState{
		user:     api.User{Username: "alice", RoomID: intPtr(roomID), Tokens: 200},
		allUsers: []api.User{{Username: "alice", RoomID: intPtr(roomID), Tokens: 200}},
	}
	mock := newBackendMock(state)
	service := newTestService(mock)

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	state.mu.Lock()
	state.questions = []api.Question{
		{ID: 1, RoomID: roomID, Question: "q1", Options: "a_b_c_d", Answer: 1},
	}
	state.mu.Unlock()
	require.NoError(t, service.Resync(ctx, false))
	require.NotNil(t, service.CurrentQuestion())

	mock.LeaveRoomFunc = func(ctx context.Context, username string) (bool, error) {
		return true, nil
	}
	// Сервер после выхода отдает пользователя уже без комнаты
	state.mu.Lock()
	state.user.RoomID = nil
	state.questions = nil
	state.mu.Unlock()

	ok, err := service.LeaveRoomForUser(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	_, inRoom := service.CurrentRoomID()
	assert.False(t, inRoom)
	assert.Nil(t, service.CurrentQuestion())
}

func TestCreateRoomForUser(t *testing.T) {
	state := &backendState{
		user: api.User{Username: "alice", Tokens: 200},
	}
	mock := newBackendMock(state)
	mock.CreateRoomFunc = func(ctx context.Context, username string) (*api.Room, error) {
		return &api.Room{ID: 11, GameID: 99}, nil
	}

	service := newTestService(mock)
	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	baseline := len(mock.GetUserCalls())

	room, err := service.CreateRoomForUser(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, 11, room.ID)
	assert.Equal(t, 99, room.GameID)

	// Создание своей комнаты триггерит foreground resync
	assert.Greater(t, len(mock.GetUserCalls()), baseline)
}

func TestFriendActions_ResyncOnlyWhenInvolved(t *testing.T) {
	mock := newBackendMock(&backendState{
		user: api.User{Username: "alice", Tokens: 200},
	})
	mock.SendFriendRequestFunc = func(ctx context.Context, from, to string) (*api.FriendRequest, error) {
		return &api.FriendRequest{ID: 1, Username1: from, Username2: to}, nil
	}
	mock.AcceptFriendRequestFunc = func(ctx context.Context, from, to string) error {
		return nil
	}
	mock.DeclineFriendRequestFunc = func(ctx context.Context, from, to string) error {
		return nil
	}

	service := newTestService(mock)
	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	// identity — отправитель: resync нужен
	baseline := len(mock.GetUserCalls())
	require.NoError(t, service.SendRequest(ctx, "alice", "bob"))
	assert.Greater(t, len(mock.GetUserCalls()), baseline)

	// identity — получатель: resync нужен
	baseline = len(mock.GetUserCalls())
	require.NoError(t, service.AcceptRequest(ctx, "bob", "alice"))
	assert.Greater(t, len(mock.GetUserCalls()), baseline)

	// identity не участвует: мутация уходит, resync не запускается
	baseline = len(mock.GetUserCalls())
	require.NoError(t, service.DeclineRequest(ctx, "bob", "carol"))
	assert.Len(t, mock.GetUserCalls(), baseline)
	require.Len(t, mock.DeclineFriendRequestCalls(), 1)
}

func TestUpdateUserTokens_OptimisticForSelf(t *testing.T) {
	state := &backendState{
		user: api.User{Username: "alice", Tokens: 200},
	}
	service := newTestService(newBackendMock(state))

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	require.Equal(t, 200, service.Points())

	// Свой баланс обновляется сразу, без ожидания следующего resync
	require.NoError(t, service.UpdateUserTokens(ctx, "alice", 350))
	assert.Equal(t, 350, service.Points())

	snap := service.Snapshot()
	require.NotNil(t, snap.User)
	assert.Equal(t, 350, snap.User.Tokens)

	// Чужой баланс локальный снимок не трогает
	require.NoError(t, service.UpdateUserTokens(ctx, "bob", 50))
	assert.Equal(t, 350, service.Points())
}

func TestStartQuestionsForRoom_NoRoomIsNoop(t *testing.T) {
	mock := newBackendMock(&backendState{
		user: api.User{Username: "alice", Tokens: 200},
	})
	service := newTestService(mock)

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	// Без комнаты — ни одного сетевого вызова и никакой ошибки
	require.NoError(t, service.StartQuestionsForRoom(ctx))
	assert.Empty(t, mock.StartQuestionTimerCalls())
	assert.Empty(t, mock.UpdateUserTokensCalls())
}

func TestStartQuestionsForRoom_ResetsTokensAndStartsTimer(t *testing.T) {
	roomID := 5
	state := &backendState{
		user: api.User{Username: "alice", RoomID: intPtr(roomID), Tokens: 350},
		allUsers: []api.User{
			{Username: "alice", RoomID: intPtr(roomID), Tokens: 350},
			{Username: "bob", RoomID: intPtr(roomID), Tokens: 200},
			{Username: "carol", RoomID: intPtr(roomID), Tokens: 80},
			{Username: "dave", RoomID: intPtr(1), Tokens: 999},
		},
	}
	mock := newBackendMock(state)
	service := newTestService(mock)

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	require.NoError(t, service.StartQuestionsForRoom(ctx))

	// Сбрасываются только участники комнаты с балансом, отличным от 200
	calls := mock.UpdateUserTokensCalls()
	require.Len(t, calls, 2)
	reset := map[string]int{}
	for _, call := range calls {
		reset[call.Username] = call.Tokens
	}
	assert.Equal(t, map[string]int{"alice": DefaultTokens, "carol": DefaultTokens}, reset)

	// Таймер запускается для текущей комнаты
	timerCalls := mock.StartQuestionTimerCalls()
	require.Len(t, timerCalls, 1)
	assert.Equal(t, roomID, timerCalls[0].RoomID)

	// Очередь вопросов начинается с чистого листа
	assert.Nil(t, service.CurrentQuestion())
	assert.Empty(t, service.Snapshot().Questions)
}

func TestStartGame(t *testing.T) {
	roomID := 6
	state := &backendState{
		user:     api.User{Username: "alice", RoomID: intPtr(roomID), Tokens: 200},
		allUsers: []api.User{{Username: "alice", RoomID: intPtr(roomID), Tokens: 200}},
	}
	mock := newBackendMock(state)
	service := newTestService(mock)

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	require.NoError(t, service.StartGame(ctx))

	startCalls := mock.StartGameCalls()
	require.Len(t, startCalls, 1)
	assert.Equal(t, roomID, startCalls[0].RoomID)

	// Комната дополнительно помечается начатой
	flagCalls := mock.SetRoomStartedCalls()
	require.Len(t, flagCalls, 1)
	assert.Equal(t, roomID, flagCalls[0].RoomID)
	assert.True(t, flagCalls[0].Started)
}

func TestStartGame_NotInRoom(t *testing.T) {
	mock := newBackendMock(&backendState{
		user: api.User{Username: "alice", Tokens: 200},
	})
	service := newTestService(mock)

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	require.Error(t, service.StartGame(ctx))
	assert.Empty(t, mock.StartGameCalls())
}

func TestSettleWager(t *testing.T) {
	roomID := 3
	state := &backendState{
		user:     api.User{Username: "alice", RoomID: intPtr(roomID), Tokens: 200},
		allUsers: []api.User{{Username: "alice", RoomID: intPtr(roomID), Tokens: 200}},
	}
	mock := newBackendMock(state)
	service := newTestService(mock)

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	// Вопроса еще нет — ставить не на что
	_, _, err := service.SettleWager(ctx, 0, 50)
	require.Error(t, err)

	state.mu.Lock()
	state.questions = []api.Question{
		{ID: 1, RoomID: roomID, Question: "q", Options: "a_b_c_d", Answer: 2}, // верный индекс 1
	}
	state.mu.Unlock()
	require.NoError(t, service.Resync(ctx, false))
	require.NotNil(t, service.CurrentQuestion())

	// Ставка больше баланса отклоняется локально
	_, _, err = service.SettleWager(ctx, 1, 500)
	require.Error(t, err)

	// Верный вариант возвращает ставку в двойном размере
	won, balance, err := service.SettleWager(ctx, 1, 50)
	require.NoError(t, err)
	assert.True(t, won)
	assert.Equal(t, 250, balance)
	assert.Equal(t, 250, service.Points())

	// Неверный вариант списывает ставку
	won, balance, err = service.SettleWager(ctx, 0, 100)
	require.NoError(t, err)
	assert.False(t, won)
	assert.Equal(t, 150, balance)
	assert.Equal(t, 150, service.Points())
}
