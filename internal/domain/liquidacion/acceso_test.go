package liquidacion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Liquidacion-api/internal/domain"
	"github.com/jhoicas/Liquidacion-api/internal/domain/entity"
	"github.com/jhoicas/Liquidacion-api/internal/domain/liquidacion"
)

func TestAutorizar_MatrizDeRoles(t *testing.T) {
	const (
		sedeCentral = "sede-central"
		sedeNorte   = "sede-norte"
		sedeSur     = "sede-sur"
	)

	tests := []struct {
		nombre    string
		actor     entity.Autoridad
		destino   string
		permitido bool
		motivo    string
	}{
		{
			nombre:  "solicitante nunca liquida, ni su propia sede",
			actor:   entity.Autoridad{Rol: entity.RolSolicitante, SedeID: sedeNorte},
			destino: sedeNorte,
			motivo:  domain.MotivoRolProhibido,
		},
		{
			nombre:    "admin liquida cualquier sede",
			actor:     entity.Autoridad{Rol: entity.RolAdmin, SedeID: sedeCentral},
			destino:   sedeSur,
			permitido: true,
		},
		{
			nombre:    "jefa liquida cualquier sede",
			actor:     entity.Autoridad{Rol: entity.RolJefa, SedeID: sedeNorte},
			destino:   sedeSur,
			permitido: true,
		},
		{
			nombre:    "almacén central liquida otra sede",
			actor:     entity.Autoridad{Rol: entity.RolAlmacen, SedeID: sedeCentral, AutoridadCentral: true},
			destino:   sedeNorte,
			permitido: true,
		},
		{
			nombre:    "almacén central liquida la central",
			actor:     entity.Autoridad{Rol: entity.RolAlmacen, SedeID: sedeCentral, AutoridadCentral: true},
			destino:   sedeCentral,
			permitido: true,
		},
		{
			nombre:    "almacén secundario liquida su propia sede",
			actor:     entity.Autoridad{Rol: entity.RolAlmacen, SedeID: sedeNorte},
			destino:   sedeNorte,
			permitido: true,
		},
		{
			nombre:  "almacén secundario no liquida otra sede",
			actor:   entity.Autoridad{Rol: entity.RolAlmacen, SedeID: sedeNorte},
			destino: sedeSur,
			motivo:  domain.MotivoSedeDistinta,
		},
		{
			nombre:  "rol desconocido se deniega como rol prohibido",
			actor:   entity.Autoridad{Rol: "GERENTE", SedeID: sedeNorte},
			destino: sedeNorte,
			motivo:  domain.MotivoRolProhibido,
		},
	}

	for _, tc := range tests {
		t.Run(tc.nombre, func(t *testing.T) {
			d := liquidacion.Autorizar(tc.actor, tc.destino)

			assert.Equal(t, tc.permitido, d.Permitido)
			if !tc.permitido {
				assert.Equal(t, tc.motivo, d.Motivo, "el motivo de denegación debe ser distinguible")
				assert.NotEmpty(t, d.Mensaje)
			}
		})
	}
}
