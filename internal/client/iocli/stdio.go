package iocli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Stdio struct{}

func NewStdio() IO {
	return &Stdio{}
}

func (s *Stdio) Println(a ...any) {
	fmt.Println(a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Printf(format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadInt читает целое число; нечисловой ввод возвращается как ошибка
func (s *Stdio) ReadInt(prompt string) (int, error) {
	input, err := s.ReadInput(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", input)
	}
	return n, nil
}
