package livestock

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores de dominio. El valor viaja al cliente como "code".
type Kind string

const (
	KindValidation       Kind = "ValidationError"
	KindDuplicateKey     Kind = "DuplicateKey"
	KindNotFound         Kind = "NotFound"
	KindInvalidReference Kind = "InvalidReference"
	KindDuplicateLink    Kind = "DuplicateLink"
	KindStore            Kind = "StoreError"
)

// Error es un error de dominio con un mensaje apto para mostrar al usuario.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return e.Msg
}

// Is permite errors.Is(err, ErrNotFound) sin importar el mensaje concreto.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

var (
	ErrValidation       = &Error{Kind: KindValidation}
	ErrDuplicateKey     = &Error{Kind: KindDuplicateKey}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrInvalidReference = &Error{Kind: KindInvalidReference}
	ErrDuplicateLink    = &Error{Kind: KindDuplicateLink}
)

func Errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf devuelve el Kind de err. Cualquier error que no sea de dominio
// se considera falla del store.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}
