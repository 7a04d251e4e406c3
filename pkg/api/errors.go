package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError представляет ошибку бекенда с HTTP статусом
// Detail заполняется из поля "detail" тела ответа, если оно есть
type StatusError struct {
	Detail string
	Status int
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsNotFound проверяет, является ли ошибка ответом 404
// Используется в session для get-or-create пользователя
func IsNotFound(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status == http.StatusNotFound
	}
	return false
}
