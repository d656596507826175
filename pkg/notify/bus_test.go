package notify_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/logistica-api/pkg/notify"
)

func TestBus_PublishAsignaIDYDefaults(t *testing.T) {
	bus := notify.NewBus()

	n := bus.Success("")
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, notify.TypeSuccess, n.Type)
	assert.Equal(t, "Operación exitosa", n.Message)
	assert.Equal(t, notify.DefaultSuccessDuration, n.Duration)

	e := bus.Error("")
	assert.Equal(t, "Ocurrió un error inesperado", e.Message)
	assert.Equal(t, notify.DefaultErrorDuration, e.Duration)
}

// La duración viaja en milisegundos por JSON, no en nanosegundos.
func TestNotification_DuracionEnMilisegundos(t *testing.T) {
	n := notify.Notification{
		ID: "n1", Type: notify.TypeSuccess, Message: "ok",
		Duration: notify.DefaultSuccessDuration,
	}
	raw, err := json.Marshal(n)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"duration":3000`)

	var back notify.Notification
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, notify.DefaultSuccessDuration, back.Duration)
}

func TestBus_ActiveMasRecientePrimero(t *testing.T) {
	bus := notify.NewBus()

	bus.Publish(notify.Notification{Type: notify.TypeInfo, Message: "primera", Duration: notify.Duration(time.Minute)})
	time.Sleep(5 * time.Millisecond)
	bus.Publish(notify.Notification{Type: notify.TypeInfo, Message: "segunda", Duration: notify.Duration(time.Minute)})

	active := bus.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "segunda", active[0].Message)
	assert.Equal(t, "primera", active[1].Message)
}

func TestBus_AutoExpira(t *testing.T) {
	bus := notify.NewBus()
	bus.Publish(notify.Notification{Type: notify.TypeSuccess, Message: "fugaz", Duration: notify.Duration(30 * time.Millisecond)})

	require.Len(t, bus.Active(), 1)
	time.Sleep(90 * time.Millisecond)
	assert.Empty(t, bus.Active())
}

func TestBus_DismissInmediato(t *testing.T) {
	bus := notify.NewBus()
	n := bus.Publish(notify.Notification{Type: notify.TypeError, Message: "fallo", Duration: notify.Duration(time.Minute)})

	bus.Dismiss(n.ID)
	assert.Empty(t, bus.Active())

	// Idempotente
	bus.Dismiss(n.ID)
}

func TestBus_SubscribeRecibePublicaciones(t *testing.T) {
	bus := notify.NewBus()
	ch := bus.Subscribe()
	defer bus.Unsubscribe(ch)

	bus.Success("creado")

	select {
	case n := <-ch:
		assert.Equal(t, "creado", n.Message)
	case <-time.After(time.Second):
		t.Fatal("el suscriptor no recibió la notificación")
	}
}
