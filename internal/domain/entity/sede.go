package entity

import "time"

// Tipos de sede. Solo puede existir una sede CENTRAL.
const (
	SedeCentral    = "CENTRAL"
	SedeSecundaria = "SECUNDARIO"
)

// Sede representa un almacén físico que guarda inventario. Inmutable una vez
// creada; las demás entidades la referencian por ID, nunca la embeben.
type Sede struct {
	ID        string
	Nombre    string
	Tipo      string // CENTRAL | SECUNDARIO
	Activo    bool
	CreatedAt time.Time
}

// EsCentral indica si la sede es el almacén central.
func (s *Sede) EsCentral() bool { return s.Tipo == SedeCentral }
