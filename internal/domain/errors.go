package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrEmailExists  = errors.New("el email ya está registrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// ValidationError describe el campo rechazado antes de cualquier llamada remota.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// RemoteKind clasifica los fallos devueltos por la base de datos remota.
type RemoteKind string

const (
	KindPermission     RemoteKind = "permission"      // política RLS / privilegios
	KindSchemaMismatch RemoteKind = "schema_mismatch" // columna desconocida en la tabla remota
	KindGeneric        RemoteKind = "generic"
)

// RemoteError fallo de la base remota ya clasificado por la capa de acceso a datos.
// Los handlers deciden el mensaje a partir de Kind, nunca del texto.
type RemoteError struct {
	Kind    RemoteKind
	Code    string // SQLSTATE o código PostgREST si existe
	Table   string
	Column  string // sólo en KindSchemaMismatch
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// RemoteKindOf devuelve el Kind de un RemoteError envuelto en err, o "" si no hay.
func RemoteKindOf(err error) RemoteKind {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}
