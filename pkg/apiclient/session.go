package apiclient

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Claves fijas de la sesión.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Store persistencia clave/valor de la sesión.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// MemStore almacenamiento en memoria: la sesión muere con el proceso.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemStore construye un store en memoria.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// FileStore almacenamiento en disco como JSON: la sesión sobrevive al proceso
// (el "recuérdame" del login).
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore construye un store sobre el archivo indicado.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.read()
	v, ok := data[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.read()
	data[key] = value
	return s.write(data)
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.read()
	delete(data, key)
	return s.write(data)
}

// read devuelve el contenido del archivo; un archivo ausente o corrupto cuenta
// como sesión vacía.
func (s *FileStore) read() map[string]string {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}
	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil || data == nil {
		return map[string]string{}
	}
	return data
}

func (s *FileStore) write(data map[string]string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("apiclient: serializar sesión: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("apiclient: crear directorio de sesión: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("apiclient: escribir sesión: %w", err)
	}
	return nil
}

// Session sesión con doble alcance: persistente (recuérdame) y de proceso.
// Al leer se consulta primero el persistente y después el de proceso.
type Session struct {
	persistent Store
	ephemeral  Store
}

// NewSession construye la sesión con ambos stores.
func NewSession(persistent, ephemeral Store) *Session {
	return &Session{persistent: persistent, ephemeral: ephemeral}
}

// Save guarda token y usuario en un solo alcance según remember.
// Antes limpia ambos: nunca quedan sesiones a medias en dos lugares.
func (s *Session) Save(token string, user User, remember bool) error {
	s.Clear()
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("apiclient: serializar usuario: %w", err)
	}
	store := s.ephemeral
	if remember {
		store = s.persistent
	}
	if err := store.Set(keyToken, token); err != nil {
		return err
	}
	return store.Set(keyUser, string(raw))
}

// Token devuelve el token vigente o vacío.
func (s *Session) Token() string {
	if v, ok := s.persistent.Get(keyToken); ok && v != "" {
		return v
	}
	if v, ok := s.ephemeral.Get(keyToken); ok {
		return v
	}
	return ""
}

// User devuelve el usuario guardado. Un JSON corrupto cuenta como ausente:
// la autorización falla cerrada.
func (s *Session) User() (User, bool) {
	raw, ok := s.persistent.Get(keyUser)
	if !ok || raw == "" {
		raw, ok = s.ephemeral.Get(keyUser)
	}
	if !ok || raw == "" {
		return User{}, false
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, false
	}
	return u, true
}

// IsAuthenticated indica si hay token guardado en cualquiera de los alcances.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// CurrentRole devuelve el rol del usuario guardado o vacío.
func (s *Session) CurrentRole() string {
	u, ok := s.User()
	if !ok {
		return ""
	}
	return u.Role
}

// Clear borra token y usuario de ambos alcances.
func (s *Session) Clear() {
	for _, store := range []Store{s.persistent, s.ephemeral} {
		_ = store.Delete(keyToken)
		_ = store.Delete(keyUser)
	}
}

// GuardDecision resultado de evaluar el acceso a una pantalla protegida.
type GuardDecision int

const (
	// Allow el usuario puede entrar.
	Allow GuardDecision = iota
	// RedirectLogin no hay sesión: mandar al login.
	RedirectLogin
	// RedirectDashboard hay sesión pero el rol no alcanza: mandar al tablero,
	// nunca de vuelta al login.
	RedirectDashboard
)

// Check evalúa el acceso con la sesión actual. Sin roles permitidos basta con
// estar autenticado.
func (s *Session) Check(allowedRoles ...string) GuardDecision {
	if !s.IsAuthenticated() {
		return RedirectLogin
	}
	if len(allowedRoles) == 0 {
		return Allow
	}
	role := s.CurrentRole()
	for _, allowed := range allowedRoles {
		if role == allowed && role != "" {
			return Allow
		}
	}
	return RedirectDashboard
}
