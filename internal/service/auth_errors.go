package service

import "errors"

// Ошибки демо-аутентификации
var (
	// ErrInvalidCredentials возвращается, когда пара email/пароль не входит
	// в захардкоженный список демо-учёток.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
