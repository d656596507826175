// Package apiclient es el SDK Go de la API de logística: HTTP con timeout,
// Bearer token automático desde la sesión, notificaciones de resultado y
// expiración de sesión centralizada en el 401.
package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tu-usuario/logistica-api/pkg/notify"
)

// requestTimeout límite de toda petición a la API.
const requestTimeout = 10 * time.Second

// APIError error devuelto por la API.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// Client cliente HTTP de la API.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
	bus     *notify.Bus
	log     zerolog.Logger

	// OnSessionExpired se invoca una vez por cada 401, después de limpiar la
	// sesión. El consumidor decide cómo mandar al usuario al login.
	OnSessionExpired func()
}

// Option configura el cliente.
type Option func(*Client)

// WithLogger habilita el log de cada petición (modo desarrollo).
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient reemplaza el transporte (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New construye el cliente. bus puede compartirse con la UI para que toda
// operación deje su notificación.
func New(baseURL string, session *Session, bus *notify.Bus, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		session: session,
		bus:     bus,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session expone la sesión del cliente (guardas de pantallas).
func (c *Client) Session() *Session { return c.session }

// do ejecuta la petición y decodifica la respuesta en out (si no es nil).
// Adjunta el Bearer token cuando hay sesión; un 401 limpia la sesión y dispara
// OnSessionExpired.
func (c *Client) do(method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: serializar cuerpo: %w", err)
		}
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("apiclient: crear petición: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send termina de preparar la petición y procesa la respuesta.
func (c *Client) send(req *http.Request, out any) error {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", req.Method).Str("path", req.URL.Path).Msg("petición fallida")
		c.notifyError("No se pudo contactar al servidor")
		return fmt.Errorf("apiclient: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("petición")

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Clear()
		if c.OnSessionExpired != nil {
			c.OnSessionExpired()
		}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, apiErr)
		c.notifyError(apiErr.Message)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if b, ok := out.(*[]byte); ok {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("apiclient: leer respuesta: %w", err)
		}
		*b = raw
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("apiclient: decodificar respuesta: %w", err)
	}
	return nil
}

// upload manda un archivo multipart en el campo "image".
func (c *Client) upload(path, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	if err != nil {
		return fmt.Errorf("apiclient: preparar multipart: %w", err)
	}
	if _, err := io.Copy(fw, file); err != nil {
		return fmt.Errorf("apiclient: copiar archivo: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("apiclient: cerrar multipart: %w", err)
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("apiclient: crear petición: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req, out)
}

func (c *Client) notifyError(message string) {
	if c.bus != nil {
		c.bus.Error(message)
	}
}

func (c *Client) notifySuccess(message string) {
	if c.bus != nil {
		c.bus.Success(message)
	}
}
