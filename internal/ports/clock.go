package ports

import "time"

// Clock — источник текущего времени. Инъекция часов позволяет
// детерминированно тестировать свипер и аудит-поля, сдвигая
// виртуальное время вместо ожидания настоящего.
type Clock interface {
	Now() time.Time
}

// SystemClock — часы на time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
