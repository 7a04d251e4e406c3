package session

import (
	"context"
)

// startPolling запускает фоновый цикл опроса
// Предыдущий цикл, если был, уже остановлен в SetIdentity
func (s *Service) startPolling() {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.stopPoll = cancel
	interval := s.pollInterval
	s.mu.Unlock()

	go s.pollLoop(ctx)

	s.logger.Debug("polling started", "interval", interval)
}

// StopPolling останавливает фоновый опрос, не трогая остальное состояние
// Отмена контекста обрывает и запрос, находящийся в полете
func (s *Service) StopPolling() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopPoll != nil {
		s.stopPoll()
		s.stopPoll = nil
	}
}

// pollLoop крутит периодическую фоновую синхронизацию до отмены контекста
// Каждый тик — один background resync; изменения, сделанные другими
// участниками, становятся видимыми только через этот путь
func (s *Service) pollLoop(ctx context.Context) {
	s.mu.RLock()
	interval := s.pollInterval
	s.mu.RUnlock()

	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("polling stopped")
			return
		case <-ticker.Chan():
			if err := s.Resync(ctx, true); err != nil {
				s.logger.Debug("background resync failed", "error", err)
			}
		}
	}
}
