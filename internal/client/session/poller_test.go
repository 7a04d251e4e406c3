package session

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchistyakov/tipoff/pkg/api"
)

func TestPolling_TickTriggersBackgroundResync(t *testing.T) {
	state := &backendState{
		user: api.User{Username: "alice", Tokens: 200},
	}
	mock := newBackendMock(state)
	clock := clockwork.NewFakeClock()
	service := NewService(mock, clock, newTestLogger())
	service.SetPollInterval(DefaultPollInterval)

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	// Первичная синхронизация уже прошла
	baseline := len(mock.GetUserCalls())
	require.GreaterOrEqual(t, baseline, 1)

	// Дожидаемся, пока цикл опроса повиснет на тикере, и двигаем часы
	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))
	clock.Advance(DefaultPollInterval)

	assert.Eventually(t, func() bool {
		return len(mock.GetUserCalls()) > baseline
	}, 5*time.Second, 10*time.Millisecond)

	// Изменения с бекенда подтягиваются именно фоновым опросом
	state.mu.Lock()
	state.user.Tokens = 425
	state.mu.Unlock()

	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))
	clock.Advance(DefaultPollInterval)
	assert.Eventually(t, func() bool {
		return service.Points() == 425
	}, 5*time.Second, 10*time.Millisecond)
}

func TestPolling_BackgroundResyncDoesNotTouchLoading(t *testing.T) {
	mock := newBackendMock(&backendState{
		user: api.User{Username: "alice", Tokens: 200},
	})
	clock := clockwork.NewFakeClock()
	service := NewService(mock, clock, newTestLogger())

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")
	defer service.StopPolling()

	baseline := len(mock.GetUserCalls())

	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))
	clock.Advance(DefaultPollInterval)

	require.Eventually(t, func() bool {
		return len(mock.GetUserCalls()) > baseline
	}, 5*time.Second, 10*time.Millisecond)

	assert.False(t, service.Snapshot().Loading)
}

func TestSetIdentityEmpty_StopsPolling(t *testing.T) {
	mock := newBackendMock(&backendState{
		user: api.User{Username: "alice", Tokens: 200},
	})
	clock := clockwork.NewFakeClock()
	service := NewService(mock, clock, newTestLogger())

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")

	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))

	// Logout останавливает опрос: дальнейшие тики не порождают запросов
	service.SetIdentity(ctx, "")
	baseline := len(mock.GetUserCalls())

	clock.Advance(DefaultPollInterval)
	clock.Advance(DefaultPollInterval)
	clock.Advance(DefaultPollInterval)

	assert.Never(t, func() bool {
		return len(mock.GetUserCalls()) > baseline
	}, 300*time.Millisecond, 20*time.Millisecond)
}

func TestStopPolling_Idempotent(t *testing.T) {
	mock := newBackendMock(&backendState{
		user: api.User{Username: "alice", Tokens: 200},
	})
	service := newTestService(mock)

	ctx := context.Background()
	service.SetIdentity(ctx, "alice")

	service.StopPolling()
	service.StopPolling()

	// Остановка опроса не трогает состояние сессии
	assert.Equal(t, "alice", service.Identity())
	assert.Equal(t, 200, service.Points())
}
