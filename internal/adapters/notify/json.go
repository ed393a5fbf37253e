package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alejandrodnm/hedgecalc/internal/domain"
)

// JSON implementa ports.Renderer emitiendo el cálculo completo sin redondear.
// Los decimal.Decimal se serializan como string.
type JSON struct {
	out io.Writer
}

// NewJSON crea un renderer JSON que escribe a stdout.
func NewJSON() *JSON {
	return &JSON{out: os.Stdout}
}

// NewJSONWriter crea un renderer JSON para tests.
func NewJSONWriter(w io.Writer) *JSON {
	return &JSON{out: w}
}

// Render escribe un documento JSON por cálculo.
func (j *JSON) Render(_ context.Context, calc domain.Calculation) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(calc); err != nil {
		return fmt.Errorf("notify.JSON.Render: %w", err)
	}
	return nil
}
