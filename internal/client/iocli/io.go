package iocli

//go:generate moq -out io_mock.go . IO

// IO абстракция вывода и ввода CLI
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	Write(p []byte) (n int, err error)
	// Mark возвращает отметку успеха или предупреждения
	Mark(ok bool) string
}
