package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrUserNotFound   = errors.New("usuario no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrAccesoDenegado = errors.New("acceso denegado")
	ErrYaLiquidado    = errors.New("el periodo ya fue liquidado para esta sede")
	ErrInvariante     = errors.New("violación de invariante de datos")
)

// Motivos de denegación para el Access Gate y el Temporal Gate.
// El caller distingue por código, no por texto del mensaje.
const (
	MotivoRolProhibido = "ROL_PROHIBIDO"
	MotivoSedeDistinta = "SEDE_DISTINTA"
	MotivoDiaBloqueado = "DIA_BLOQUEADO"
)

// DenegadoError indica que una liquidación fue rechazada por la puerta de
// acceso o por la ventana temporal. Unwrap devuelve ErrAccesoDenegado para que
// errors.Is funcione en los handlers.
type DenegadoError struct {
	Motivo  string
	Mensaje string
}

func (e *DenegadoError) Error() string {
	return fmt.Sprintf("acceso denegado (%s): %s", e.Motivo, e.Mensaje)
}

func (e *DenegadoError) Unwrap() error { return ErrAccesoDenegado }

// NewDenegado construye un DenegadoError con motivo y mensaje para el usuario.
func NewDenegado(motivo, mensaje string) *DenegadoError {
	return &DenegadoError{Motivo: motivo, Mensaje: mensaje}
}

// ValidacionError envuelve ErrInvalidInput indicando el campo rechazado.
type ValidacionError struct {
	Campo   string
	Mensaje string
}

func (e *ValidacionError) Error() string {
	return fmt.Sprintf("validación %s: %s", e.Campo, e.Mensaje)
}

func (e *ValidacionError) Unwrap() error { return ErrInvalidInput }

// NewValidacion construye un error de validación sobre un campo.
func NewValidacion(campo, mensaje string) *ValidacionError {
	return &ValidacionError{Campo: campo, Mensaje: mensaje}
}
