package models

// User представляет пользователя в системе
type User struct {
	Username string `json:"username"` // уникальный username, служит идентификатором
	RoomID   *int   `json:"room_id"`  // id текущей комнаты, nil если не в комнате
	Tokens   int    `json:"tokens"`   // баланс очков для ставок
}

// InRoom проверяет, находится ли пользователь в комнате roomID
func (u *User) InRoom(roomID int) bool {
	return u.RoomID != nil && *u.RoomID == roomID
}

// Room представляет игровую комнату, привязанную к спортивному событию
type Room struct {
	ID     int `json:"id"`
	GameID int `json:"game_id"`
}

// Member элемент состава комнаты: пользователь плюс детерминированно
// назначенный номер аватара (позиция в отсортированном составе)
type Member struct {
	User
	Avatar int `json:"avatar"`
}
