package iocli

//go:generate moq -out io_mock.go . IO

// IO консольный ввод-вывод команд клиента
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadInt(prompt string) (int, error)
}
