package apiclient_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/logistica-api/pkg/apiclient"
	"github.com/tu-usuario/logistica-api/pkg/workflow"
)

func newTestSession(t *testing.T) *apiclient.Session {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return apiclient.NewSession(apiclient.NewFileStore(path), apiclient.NewMemStore())
}

func TestSession_GuardarConRecordarPersiste(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := apiclient.NewSession(apiclient.NewFileStore(path), apiclient.NewMemStore())

	user := apiclient.User{ID: 1, Name: "Ana", Role: workflow.RoleAdmin}
	require.NoError(t, s.Save("tok-123", user, true))

	// Un proceso nuevo solo comparte el store en disco.
	s2 := apiclient.NewSession(apiclient.NewFileStore(path), apiclient.NewMemStore())
	assert.True(t, s2.IsAuthenticated(), "la sesión con recordar sobrevive al proceso")
	assert.Equal(t, "tok-123", s2.Token())
	assert.Equal(t, workflow.RoleAdmin, s2.CurrentRole())
}

func TestSession_GuardarSinRecordarMuereConElProceso(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := apiclient.NewSession(apiclient.NewFileStore(path), apiclient.NewMemStore())

	require.NoError(t, s.Save("tok-123", apiclient.User{ID: 1}, false))
	assert.True(t, s.IsAuthenticated())

	s2 := apiclient.NewSession(apiclient.NewFileStore(path), apiclient.NewMemStore())
	assert.False(t, s2.IsAuthenticated(), "sin recordar no queda nada en disco")
}

func TestSession_ClearBorraAmbosAlcances(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Save("tok", apiclient.User{ID: 1}, true))
	require.NoError(t, s.Save("tok2", apiclient.User{ID: 1}, false))

	s.Clear()
	assert.False(t, s.IsAuthenticated())
	_, ok := s.User()
	assert.False(t, ok)
}

// Un usuario corrupto en el store cuenta como ausente: la guarda falla cerrada.
func TestSession_UsuarioCorruptoFallaCerrado(t *testing.T) {
	persistent := apiclient.NewMemStore()
	s := apiclient.NewSession(persistent, apiclient.NewMemStore())
	require.NoError(t, persistent.Set("token", "tok"))
	require.NoError(t, persistent.Set("user", "{json roto"))

	_, ok := s.User()
	assert.False(t, ok)
	assert.Empty(t, s.CurrentRole())
	assert.Equal(t, apiclient.RedirectDashboard, s.Check(workflow.RoleAdmin),
		"con token pero sin rol legible la autorización se niega")
}

func TestSession_Check(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, apiclient.RedirectLogin, s.Check(workflow.RoleAdmin),
		"sin sesión siempre al login")

	require.NoError(t, s.Save("tok", apiclient.User{ID: 2, Role: workflow.RoleSales}, false))

	assert.Equal(t, apiclient.Allow, s.Check(), "sin roles requeridos basta la sesión")
	assert.Equal(t, apiclient.Allow, s.Check(workflow.RoleAdmin, workflow.RoleSales))
	assert.Equal(t, apiclient.RedirectDashboard, s.Check(workflow.RoleAdmin),
		"rol insuficiente manda al tablero, nunca al login")
}
