package liquidacion

import (
	"fmt"

	"github.com/jhoicas/Liquidacion-api/internal/domain"
	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
)

// Decision es el resultado del Access Gate: permitido, o denegado con un
// motivo distinguible para el mensaje al usuario.
type Decision struct {
	Permitido bool
	Motivo    string // domain.MotivoRolProhibido | domain.MotivoSedeDistinta
	Mensaje   string
}

// Autorizar evalúa si el actor puede liquidar la sede destino. Reglas en orden:
//  1. SOLICITANTE nunca liquida.
//  2. ADMIN y JEFA liquidan cualquier sede.
//  3. ALMACEN con autoridad central (su sede es la CENTRAL) liquida cualquier
//     sede, incluida la central.
//  4. ALMACEN de sede secundaria solo liquida su propia sede.
//
// Función pura: no consulta reloj ni almacenamiento. La ventana temporal se
// evalúa aparte (VentanaHoy) y ambas puertas deben pasar.
func Autorizar(actor entity.Autoridad, sedeDestinoID string) Decision {
	switch actor.Rol {
	case entity.RolSolicitante:
		return Decision{
			Motivo:  domain.MotivoRolProhibido,
			Mensaje: "el rol SOLICITANTE no tiene permisos de liquidación",
		}
	case entity.RolAdmin, entity.RolJefa:
		return Decision{Permitido: true}
	case entity.RolAlmacen:
		if actor.AutoridadCentral {
			return Decision{Permitido: true}
		}
		if actor.SedeID == sedeDestinoID {
			return Decision{Permitido: true}
		}
		return Decision{
			Motivo:  domain.MotivoSedeDistinta,
			Mensaje: "un almacén de sede secundaria solo puede liquidar su propia sede",
		}
	default:
		return Decision{
			Motivo:  domain.MotivoRolProhibido,
			Mensaje: fmt.Sprintf("rol desconocido %q", actor.Rol),
		}
	}
}
