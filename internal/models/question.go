package models

import (
	"fmt"
	"strings"
)

// OptionCount количество вариантов ответа в каждом вопросе
const OptionCount = 4

// Question представляет вопрос в распакованном виде:
// варианты разделены, индекс правильного ответа нумеруется с нуля
type Question struct {
	ID      int                 `json:"id"`
	RoomID  int                 `json:"room_id"`
	Text    string              `json:"text"`
	Options [OptionCount]string `json:"options"`
	Answer  int                 `json:"answer"` // 0..3
}

// SplitOptions разбирает упакованную строку вариантов вида
// "LeBron_Tatum_White_Russell". Ожидаются ровно четыре непустых варианта.
func SplitOptions(packed string) ([OptionCount]string, error) {
	var options [OptionCount]string

	parts := strings.Split(packed, "_")
	if len(parts) != OptionCount {
		return options, fmt.Errorf("expected %d options, got %d in %q", OptionCount, len(parts), packed)
	}

	for i, part := range parts {
		if part == "" {
			return options, fmt.Errorf("option %d is empty in %q", i+1, packed)
		}
		options[i] = part
	}

	return options, nil
}

// ParseAnswer конвертирует номер правильного ответа бекенда (1..4)
// в индекс варианта (0..3)
func ParseAnswer(answer int) (int, error) {
	if answer < 1 || answer > OptionCount {
		return 0, fmt.Errorf("answer %d out of range 1..%d", answer, OptionCount)
	}
	return answer - 1, nil
}
