package ports

import (
	"context"

	"github.com/alejandrodnm/hedgecalc/internal/domain"
)

// Renderer presenta el resultado de un cálculo al usuario.
type Renderer interface {
	// Render muestra el resumen y las dos tablas de sensibilidad
	// (bajadas y subidas de cuota) por separado.
	Render(ctx context.Context, calc domain.Calculation) error
}
