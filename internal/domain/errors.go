package domain

import (
	"errors"
	"fmt"
)

// Códigos de la taxonomía de errores. Un resultado vacío nunca es un error:
// un fallo de transporte con la base de datos se distingue siempre de una
// agenda genuinamente vacía.
const (
	CodeValidation = "VALIDATION"
	CodeConflict   = "CONFLICT"
	CodeNotFound   = "NOT_FOUND"
	CodeTransport  = "TRANSPORT"
)

// Error es un error con código y causa opcional.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func NewConflictError(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// NewTransportError envuelve un fallo de infraestructura (base de datos,
// red) conservando la causa original.
func NewTransportError(message string, err error) *Error {
	return &Error{Code: CodeTransport, Message: message, Err: err}
}

// IsCode informa si err (o algo en su cadena) lleva el código dado.
func IsCode(err error, code string) bool {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
