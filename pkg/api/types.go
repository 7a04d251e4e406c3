package api

// User представляет пользователя в ответах бекенда
type User struct {
	Username string `json:"username"` // уникальный username
	RoomID   *int   `json:"room_id"`  // id комнаты или null, если не в комнате
	Tokens   int    `json:"tokens"`   // текущий баланс очков
}

// Room представляет игровую комнату (лобби)
type Room struct {
	ID     int `json:"id"`      // id комнаты
	GameID int `json:"game_id"` // id спортивного события, к которому привязана комната
}

// FriendRequest представляет заявку в друзья
type FriendRequest struct {
	ID        int    `json:"id"`
	Username1 string `json:"username1"` // отправитель
	Username2 string `json:"username2"` // получатель
}

// Question представляет вопрос в том виде, в каком его отдает бекенд:
// варианты упакованы в одну строку через "_", answer нумеруется с 1
type Question struct {
	ID       int    `json:"id"`
	RoomID   int    `json:"room_id"`
	Question string `json:"question"` // текст вопроса
	Options  string `json:"options"`  // "LeBron_Tatum_White_Russell"
	Answer   int    `json:"answer"`   // 1..4
}

// ErrorResponse представляет тело ошибки бекенда
type ErrorResponse struct {
	Detail string `json:"detail"` // человекочитаемое описание ошибки
}
