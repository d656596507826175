// Package table renderiza listados tabulares en texto para el tablero de
// terminal: columnas declarativas, columnas omitidas por pantalla y estados de
// carga y vacío.
package table

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// EmptyMessage texto mostrado cuando no hay filas.
const EmptyMessage = "Sin datos"

// LoadingMessage texto mostrado mientras llegan los datos.
const LoadingMessage = "Cargando..."

// Column columna declarativa de la tabla.
type Column[T any] struct {
	Key    string
	Label  string
	Render func(row T) string
}

// Table tabla tipada sobre un slice de filas.
type Table[T any] struct {
	columns []Column[T]
	skip    map[string]bool
}

// New construye una tabla con sus columnas.
func New[T any](columns ...Column[T]) *Table[T] {
	return &Table[T]{columns: columns, skip: make(map[string]bool)}
}

// Skip marca columnas por Key para omitirlas en este render; cada pantalla
// esconde lo que no le aplica sin declarar otra tabla.
func (t *Table[T]) Skip(keys ...string) *Table[T] {
	for _, k := range keys {
		t.skip[k] = true
	}
	return t
}

// Render dibuja la tabla. loading gana sobre vacío; sin filas se muestra
// EmptyMessage bajo la cabecera.
func (t *Table[T]) Render(rows []T, loading bool) string {
	visible := t.visibleColumns()
	widths := make([]int, len(visible))
	for i, col := range visible {
		widths[i] = utf8.RuneCountInString(col.Label)
	}

	cells := make([][]string, len(rows))
	if !loading {
		for ri, row := range rows {
			cells[ri] = make([]string, len(visible))
			for ci, col := range visible {
				v := col.Render(row)
				cells[ri][ci] = v
				if w := utf8.RuneCountInString(v); w > widths[ci] {
					widths[ci] = w
				}
			}
		}
	}

	var b strings.Builder
	writeRow := func(values []string) {
		for i, v := range values {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(pad(v, widths[i]))
		}
		b.WriteByte('\n')
	}

	labels := make([]string, len(visible))
	for i, col := range visible {
		labels[i] = col.Label
	}
	writeRow(labels)
	b.WriteString(strings.Repeat("-", lineWidth(widths)))
	b.WriteByte('\n')

	if loading {
		b.WriteString(LoadingMessage)
		b.WriteByte('\n')
		return b.String()
	}
	if len(rows) == 0 {
		b.WriteString(EmptyMessage)
		b.WriteByte('\n')
		return b.String()
	}
	for _, row := range cells {
		writeRow(row)
	}
	return b.String()
}

func (t *Table[T]) visibleColumns() []Column[T] {
	out := make([]Column[T], 0, len(t.columns))
	for _, col := range t.columns {
		if !t.skip[col.Key] {
			out = append(out, col)
		}
	}
	return out
}

func pad(s string, width int) string {
	if n := width - utf8.RuneCountInString(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func lineWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	if len(widths) > 1 {
		total += 2 * (len(widths) - 1)
	}
	return total
}

// Date formatea fechas como dd/mm/aaaa para las columnas de tiempo.
func Date(ts time.Time) string {
	if ts.IsZero() {
		return "—"
	}
	return fmt.Sprintf("%02d/%02d/%04d", ts.Day(), int(ts.Month()), ts.Year())
}
