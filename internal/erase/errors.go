package erase

import "fmt"

// ErrorKind классифицирует ошибки затирания
type ErrorKind int

const (
	ErrNotFound ErrorKind = iota
	ErrPermissionDenied
	ErrUnknownStandard
	ErrIO
	ErrCancelled
)

// String возвращает строковое представление вида ошибки
func (k ErrorKind) String() string {
	switch k {
	case ErrNotFound:
		return "NOT_FOUND"
	case ErrPermissionDenied:
		return "PERMISSION_DENIED"
	case ErrUnknownStandard:
		return "UNKNOWN_STANDARD"
	case ErrIO:
		return "IO_ERROR"
	case ErrCancelled:
		return "CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// EraseError ошибка операции затирания с контекстом прохода
type EraseError struct {
	Kind  ErrorKind
	Pass  int    // индекс прохода, на котором произошла ошибка
	Bytes uint64 // байт записано в прерванном проходе
	Err   error
}

func (e *EraseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (проход %d, записано %d байт): %v", e.Kind, e.Pass, e.Bytes, e.Err)
	}
	return fmt.Sprintf("%s (проход %d, записано %d байт)", e.Kind, e.Pass, e.Bytes)
}

func (e *EraseError) Unwrap() error {
	return e.Err
}

// KindOf возвращает вид ошибки; для посторонних ошибок возвращает ErrIO
func KindOf(err error) ErrorKind {
	if ee, ok := err.(*EraseError); ok {
		return ee.Kind
	}
	return ErrIO
}
