package entity

import "time"

// Proyecto es el centro de costo contra el que se imputan los retiros de
// material (instalaciones, tendidos, reparaciones).
type Proyecto struct {
	ID        string
	Codigo    string
	Nombre    string
	Activo    bool
	CreatedAt time.Time
}
