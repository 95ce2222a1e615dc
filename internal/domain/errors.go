package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrNotFound cubre también los accesos cruzados entre empresas: buscar un
// recurso de otra empresa reporta NotFound, nunca un "forbidden" distinto.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidReference   = errors.New("referencia inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)
