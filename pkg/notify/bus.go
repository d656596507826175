// Package notify implementa el bus de notificaciones transitorias del sistema:
// una cola a nivel de proceso donde cada petición mutante deja un mensaje de
// éxito o error. Las notificaciones expiran solas tras su duración o se
// descartan explícitamente; nunca se persisten.
package notify

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Tipos de notificación.
const (
	TypeSuccess = "success"
	TypeError   = "error"
	TypeInfo    = "info"
	TypeWarning = "warning"
)

// Duraciones por defecto según el tipo (mismo criterio que la UI original:
// los errores permanecen más tiempo en pantalla).
const (
	DefaultSuccessDuration = Duration(3 * time.Second)
	DefaultErrorDuration   = Duration(5 * time.Second)
)

// Duration tiempo de vida de una notificación. En JSON viaja como un entero
// de milisegundos; los nanosegundos de time.Duration son ilegibles para los
// consumidores del endpoint.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).Milliseconds())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	*d = Duration(time.Duration(ms) * time.Millisecond)
	return nil
}

// Notification mensaje transitorio dirigido al usuario.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Duration  Duration  `json:"duration"`
	CreatedAt time.Time `json:"createdAt"`
}

// Bus cola de notificaciones del proceso. Publicar agenda la auto-expiración;
// los suscriptores reciben cada notificación nueva por canal.
type Bus struct {
	mu     sync.Mutex
	active map[string]Notification
	timers map[string]*time.Timer
	subs   map[chan Notification]struct{}
}

// NewBus crea un bus vacío.
func NewBus() *Bus {
	return &Bus{
		active: make(map[string]Notification),
		timers: make(map[string]*time.Timer),
		subs:   make(map[chan Notification]struct{}),
	}
}

// Publish encola una notificación, le asigna ID y programa su expiración.
// Si Duration es cero se aplica el valor por defecto del tipo.
// Devuelve la notificación ya completada.
func (b *Bus) Publish(n Notification) Notification {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Duration <= 0 {
		if n.Type == TypeError {
			n.Duration = DefaultErrorDuration
		} else {
			n.Duration = DefaultSuccessDuration
		}
	}
	n.CreatedAt = time.Now()

	b.mu.Lock()
	b.active[n.ID] = n
	id := n.ID
	b.timers[id] = time.AfterFunc(time.Duration(n.Duration), func() { b.Dismiss(id) })
	for ch := range b.subs {
		select {
		case ch <- n:
		default:
			// Suscriptor lento: se salta la entrega, nunca se bloquea el bus.
		}
	}
	b.mu.Unlock()
	return n
}

// Success publica una notificación de éxito con mensaje del servidor o genérico.
func (b *Bus) Success(message string) Notification {
	if message == "" {
		message = "Operación exitosa"
	}
	return b.Publish(Notification{Type: TypeSuccess, Message: message})
}

// Error publica una notificación de error con mensaje del servidor o genérico.
func (b *Bus) Error(message string) Notification {
	if message == "" {
		message = "Ocurrió un error inesperado"
	}
	return b.Publish(Notification{Type: TypeError, Message: message})
}

// Dismiss elimina la notificación de inmediato. Idempotente.
func (b *Bus) Dismiss(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if t, ok := b.timers[id]; ok {
		t.Stop()
		delete(b.timers, id)
	}
	delete(b.active, id)
}

// Active devuelve las notificaciones vigentes, la más reciente primero.
func (b *Bus) Active() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Notification, 0, len(b.active))
	for _, n := range b.active {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Subscribe registra un canal que recibirá cada notificación publicada.
// El canal debe drenarse; las entregas a canales llenos se descartan.
func (b *Bus) Subscribe() chan Notification {
	ch := make(chan Notification, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe retira y cierra el canal del suscriptor.
func (b *Bus) Unsubscribe(ch chan Notification) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}
