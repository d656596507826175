// Package pdf implementa la nota de entrega imprimible de una orden usando
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nota de Entrega  │  N° Orden + Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Número + Datos fiscales + Teléfono        │
//	│  ENTREGA: Dirección + Notas                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  STATUS + evidencia fotográfica (carga / descarga)           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de consulta pública + firmas                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/logistica-api/internal/application/usecase"
	"github.com/tu-usuario/logistica-api/internal/domain/entity"
	"github.com/tu-usuario/logistica-api/pkg/workflow"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.DeliveryNoteGenerator = (*MarotoDeliveryNote)(nil)

// MarotoDeliveryNote implementa usecase.DeliveryNoteGenerator usando Maroto v2.
type MarotoDeliveryNote struct{}

// NewMarotoDeliveryNote construye el generador.
func NewMarotoDeliveryNote() *MarotoDeliveryNote { return &MarotoDeliveryNote{} }

// GenerateDeliveryNote genera el PDF y devuelve sus bytes. customer puede ser
// nil si el cliente fue eliminado después de crear la orden.
func (g *MarotoDeliveryNote) GenerateDeliveryNote(
	_ context.Context,
	order *entity.Order,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Nota de Entrega #%d", order.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(order, customer))
	m.AddRows(deliveryRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(statusRow(order))
	for _, r := range evidenceRows(order) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(order)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y número de orden + fecha (der).
func headerRow(order *entity.Order) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("NOTA DE ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Logística de pedidos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("ORDEN #%d", order.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 3,
			}),
			text.New("Fecha: "+order.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente destinatario.
func customerRow(order *entity.Order, customer *entity.Customer) core.Row {
	name, fiscal, phone := "—", "—", "—"
	if customer != nil {
		name = customer.Name
		fiscal = nonEmpty(customer.FiscalData, "—")
		phone = nonEmpty(customer.Phone, "—")
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("N° cliente: %s   |   Datos fiscales: %s   |   Tel: %s",
				order.CustomerNumber, fiscal, phone,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// deliveryRow: dirección de entrega y notas de la orden.
func deliveryRow(order *entity.Order) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ENTREGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Dirección: "+nonEmpty(order.DeliveryAddress, "—"), props.Text{
				Size: 9, Top: 6,
			}),
			text.New("Notas: "+nonEmpty(order.Notes, "—"), props.Text{
				Size: 8, Top: 11, Color: colorGray,
			}),
		),
	)
}

// statusRow: status actual resaltado.
func statusRow(order *entity.Order) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("STATUS: "+order.Status, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

// evidenceRows: una fila por foto registrada (carga / descarga).
func evidenceRows(order *entity.Order) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("EVIDENCIA FOTOGRÁFICA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	if len(order.Images) == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Sin fotos registradas.", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
		)))
		return rows
	}
	for _, img := range order.Images {
		label := "Foto"
		switch img.Description {
		case workflow.ImageTagLoaded:
			label = "Foto de carga"
		case workflow.ImageTagUnloaded:
			label = "Foto de descarga"
		}
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 2,
			})),
			col.New(9).Add(text.New(
				img.ImageURL+"   ("+img.CreatedAt.Format("02/01/2006 15:04")+")",
				props.Text{Size: 7.5, Color: colorGray, Top: 1},
			)),
		))
	}
	return rows
}

// footerRows: QR de consulta pública + espacio de firmas.
func footerRows(order *entity.Order) []core.Row {
	qrData := fmt.Sprintf("customerNumber=%s&orderId=%d", order.CustomerNumber, order.ID)
	return []core.Row{
		row.New(40).Add(
			col.New(4).Add(code.NewQr(qrData, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Escanea el código QR para consultar\nel estado de tu pedido en línea.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("Recibido conforme: ______________________", props.Text{
					Size: 9, Top: 26, Left: 3,
				}),
				text.New("Fecha y firma del cliente", props.Text{
					Size: 7, Top: 32, Left: 3, Color: colorGray,
				}),
			),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
