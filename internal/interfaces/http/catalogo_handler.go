package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Liquidacion-api/internal/domain/repository"
)

// CatalogoHandler expone los read models del catálogo: sedes, productos y
// proyectos. El catálogo se administra fuera del motor; aquí solo se lee.
type CatalogoHandler struct {
	sedeRepo     repository.SedeRepository
	productoRepo repository.ProductoRepository
	proyectoRepo repository.ProyectoRepository
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(
	sedeRepo repository.SedeRepository,
	productoRepo repository.ProductoRepository,
	proyectoRepo repository.ProyectoRepository,
) *CatalogoHandler {
	return &CatalogoHandler{sedeRepo: sedeRepo, productoRepo: productoRepo, proyectoRepo: proyectoRepo}
}

// ListSedes godoc
// @Summary      Sedes activas
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Sede
// @Router       /api/sedes [get]
func (h *CatalogoHandler) ListSedes(c *fiber.Ctx) error {
	sedes, err := h.sedeRepo.ListActivas(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(sedes), "sedes": sedes})
}

// ListProductos godoc
// @Summary      Productos activos
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Producto
// @Router       /api/productos [get]
func (h *CatalogoHandler) ListProductos(c *fiber.Ctx) error {
	productos, err := h.productoRepo.ListActivos(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(productos), "productos": productos})
}

// ListProyectos godoc
// @Summary      Proyectos activos
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Proyecto
// @Router       /api/proyectos [get]
func (h *CatalogoHandler) ListProyectos(c *fiber.Ctx) error {
	proyectos, err := h.proyectoRepo.ListActivos(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(proyectos), "proyectos": proyectos})
}
