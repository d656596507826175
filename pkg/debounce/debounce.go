// Package debounce pospone la ejecución de una función hasta que pase un
// intervalo sin nuevas invocaciones. Se usa para el typeahead de clientes:
// una sola búsqueda 500ms después de la última tecla, no una por tecla.
package debounce

import (
	"sync"
	"time"
)

// Debouncer agrupa invocaciones repetidas en una sola ejecución diferida.
// Seguro para uso concurrente.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// New crea un Debouncer con el retardo dado.
func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do programa fn para ejecutarse cuando pase el retardo sin otra llamada a Do.
// Cada llamada cancela la ejecución pendiente anterior.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancela la ejecución pendiente, si la hay.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
