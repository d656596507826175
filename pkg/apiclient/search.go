package apiclient

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tu-usuario/logistica-api/pkg/debounce"
)

// SearchDebounce espera tras la última tecla antes de consultar.
const SearchDebounce = 500 * time.Millisecond

// CustomerSearcher typeahead de clientes: agrupa tecleos con debounce y
// descarta respuestas viejas para que nunca pisen a una más reciente.
type CustomerSearcher struct {
	customers *CustomersService
	debouncer *debounce.Debouncer
	seq       atomic.Uint64

	mu       sync.Mutex
	onResult func([]CustomerOption, error)
}

// NewCustomerSearcher construye el buscador. onResult recibe las opciones de
// la última búsqueda vigente (o el error); nunca se invoca con resultados
// obsoletos.
func NewCustomerSearcher(c *Client, onResult func([]CustomerOption, error)) *CustomerSearcher {
	return &CustomerSearcher{
		customers: c.Customers(),
		debouncer: debounce.New(SearchDebounce),
		onResult:  onResult,
	}
}

// Type registra un tecleo. Términos de menos de 2 caracteres limpian las
// opciones sin tocar la red.
func (s *CustomerSearcher) Type(term string) {
	gen := s.seq.Add(1)
	if len([]rune(term)) < MinSearchLen {
		s.debouncer.Stop()
		s.deliver(gen, nil, nil)
		return
	}
	s.debouncer.Do(func() {
		options, err := s.customers.Search(term)
		s.deliver(gen, options, err)
	})
}

// Close cancela cualquier búsqueda pendiente.
func (s *CustomerSearcher) Close() {
	s.debouncer.Stop()
}

// deliver entrega el resultado solo si sigue siendo el más reciente.
func (s *CustomerSearcher) deliver(gen uint64, options []CustomerOption, err error) {
	if gen != s.seq.Load() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.onResult != nil {
		s.onResult(options, err)
	}
}
