package table_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/logistica-api/internal/tablero/table"
)

type fila struct {
	ID     int64
	Nombre string
	Alta   time.Time
}

func newTabla() *table.Table[fila] {
	return table.New(
		table.Column[fila]{Key: "id", Label: "ID", Render: func(r fila) string {
			return strconv.FormatInt(r.ID, 10)
		}},
		table.Column[fila]{Key: "nombre", Label: "Nombre", Render: func(r fila) string {
			return r.Nombre
		}},
		table.Column[fila]{Key: "alta", Label: "Alta", Render: func(r fila) string {
			return table.Date(r.Alta)
		}},
	)
}

func TestTable_RenderFilas(t *testing.T) {
	out := newTabla().Render([]fila{
		{ID: 1, Nombre: "Ferretería El Clavo", Alta: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Nombre: "Abarrotes Lupita"},
	}, false)

	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Ferretería El Clavo")
	assert.Contains(t, out, "07/03/2025", "las fechas van como dd/mm/aaaa")
	assert.Contains(t, out, "—", "fecha cero se muestra como guion")
}

func TestTable_CargandoGanaSobreVacio(t *testing.T) {
	out := newTabla().Render(nil, true)
	assert.Contains(t, out, table.LoadingMessage)
	assert.NotContains(t, out, table.EmptyMessage)
}

func TestTable_SinFilasMuestraSinDatos(t *testing.T) {
	out := newTabla().Render(nil, false)
	assert.Contains(t, out, table.EmptyMessage)
}

func TestTable_SkipOmiteColumnas(t *testing.T) {
	out := newTabla().Skip("alta").Render([]fila{{ID: 1, Nombre: "Ferretería"}}, false)
	assert.NotContains(t, out, "Alta")

	// La cabecera conserva las columnas restantes.
	primera := strings.SplitN(out, "\n", 2)[0]
	assert.Contains(t, primera, "ID")
	assert.Contains(t, primera, "Nombre")
}
