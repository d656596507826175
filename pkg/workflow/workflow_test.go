package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/logistica-api/pkg/workflow"
)

var allRoles = []string{
	workflow.RoleAdmin,
	workflow.RoleSales,
	workflow.RolePurchasing,
	workflow.RoleWarehouse,
	workflow.RoleRoute,
}

var allStatuses = []string{
	workflow.StatusOrdered,
	workflow.StatusInProcess,
	workflow.StatusInRoute,
	workflow.StatusDelivered,
}

// Tabla completa rol × status de visibilidad del botón de avance.
func TestCanAdvance_TablaCompleta(t *testing.T) {
	expected := map[string]map[string]bool{
		workflow.RoleAdmin: {
			workflow.StatusOrdered:   true,
			workflow.StatusInProcess: true,
			workflow.StatusInRoute:   true,
			workflow.StatusDelivered: false,
		},
		workflow.RoleSales: {
			workflow.StatusOrdered:   false,
			workflow.StatusInProcess: false,
			workflow.StatusInRoute:   false,
			workflow.StatusDelivered: false,
		},
		workflow.RolePurchasing: {
			workflow.StatusOrdered:   true,
			workflow.StatusInProcess: false,
			workflow.StatusInRoute:   false,
			workflow.StatusDelivered: false,
		},
		workflow.RoleWarehouse: {
			workflow.StatusOrdered:   false,
			workflow.StatusInProcess: true,
			workflow.StatusInRoute:   true,
			workflow.StatusDelivered: false,
		},
		workflow.RoleRoute: {
			workflow.StatusOrdered:   false,
			workflow.StatusInProcess: false,
			workflow.StatusInRoute:   true,
			workflow.StatusDelivered: false,
		},
	}

	for _, role := range allRoles {
		for _, status := range allStatuses {
			got := workflow.CanAdvance(role, status)
			assert.Equal(t, expected[role][status], got,
				"rol=%s status=%s", role, status)
		}
	}
}

func TestCanAdvance_RolDesconocidoNuncaAvanza(t *testing.T) {
	for _, status := range allStatuses {
		assert.False(t, workflow.CanAdvance("intruso", status))
		assert.False(t, workflow.CanAdvance("", status))
	}
}

func TestCanAdvance_StatusDesconocidoNuncaAvanza(t *testing.T) {
	for _, role := range allRoles {
		assert.False(t, workflow.CanAdvance(role, "In process")) // casing no canónico
		assert.False(t, workflow.CanAdvance(role, ""))
	}
}

// Con 2 fotos el botón de adjuntar desaparece para todos, sin excepción.
func TestCanAttachImage_NuncaConDosFotos(t *testing.T) {
	for _, role := range allRoles {
		for _, status := range allStatuses {
			assert.False(t, workflow.CanAttachImage(role, status, 2),
				"rol=%s status=%s", role, status)
		}
	}
}

func TestCanAttachImage_NuncaEnOrdered(t *testing.T) {
	for _, role := range allRoles {
		for count := 0; count < 2; count++ {
			assert.False(t, workflow.CanAttachImage(role, workflow.StatusOrdered, count))
		}
	}
}

func TestCanAttachImage_ReglaCompuesta(t *testing.T) {
	// status != Ordered fijo; se recorre rol × conteo.
	status := workflow.StatusInProcess

	assert.True(t, workflow.CanAttachImage(workflow.RoleAdmin, status, 0))
	assert.True(t, workflow.CanAttachImage(workflow.RoleAdmin, status, 1))

	assert.True(t, workflow.CanAttachImage(workflow.RoleWarehouse, status, 0))
	assert.False(t, workflow.CanAttachImage(workflow.RoleWarehouse, status, 1))

	assert.False(t, workflow.CanAttachImage(workflow.RoleRoute, status, 0))
	assert.True(t, workflow.CanAttachImage(workflow.RoleRoute, status, 1))

	for _, role := range []string{workflow.RoleSales, workflow.RolePurchasing} {
		assert.False(t, workflow.CanAttachImage(role, status, 0))
		assert.False(t, workflow.CanAttachImage(role, status, 1))
	}
}

func TestNext_ProgresionLineal(t *testing.T) {
	next, err := workflow.Next(workflow.StatusOrdered)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusInProcess, next)

	next, err = workflow.Next(workflow.StatusInProcess)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusInRoute, next)

	next, err = workflow.Next(workflow.StatusInRoute)
	require.NoError(t, err)
	assert.Equal(t, workflow.StatusDelivered, next)
}

func TestNext_DeliveredEsTerminal(t *testing.T) {
	_, err := workflow.Next(workflow.StatusDelivered)
	assert.Error(t, err)
}

func TestNext_StatusDesconocido(t *testing.T) {
	_, err := workflow.Next("Shipped")
	assert.Error(t, err)
}

func TestActionLabel(t *testing.T) {
	assert.Equal(t, "Procesar", workflow.ActionLabel(workflow.StatusOrdered))
	assert.Equal(t, "Rutear", workflow.ActionLabel(workflow.StatusInProcess))
	assert.Equal(t, "Entregar", workflow.ActionLabel(workflow.StatusInRoute))
	assert.Equal(t, "", workflow.ActionLabel(workflow.StatusDelivered))
}

func TestImageTag(t *testing.T) {
	assert.Equal(t, "loaded", workflow.ImageTag(0))
	assert.Equal(t, "unloaded", workflow.ImageTag(1))
}

func TestEvaluate_PurchasingEnOrdered(t *testing.T) {
	d := workflow.Evaluate(workflow.RolePurchasing, workflow.StatusOrdered, 0)
	assert.True(t, d.AdvanceVisible)
	assert.Equal(t, "Procesar", d.ActionLabel)
	assert.False(t, d.ImageActionVisible, "en Ordered no se adjuntan fotos")
}

func TestEvaluate_SalesEnRuta(t *testing.T) {
	d := workflow.Evaluate(workflow.RoleSales, workflow.StatusInRoute, 1)
	assert.False(t, d.AdvanceVisible)
	assert.Empty(t, d.ActionLabel)
	assert.False(t, d.ImageActionVisible)
}

func TestEvaluate_RouteConUnaFoto(t *testing.T) {
	d := workflow.Evaluate(workflow.RoleRoute, workflow.StatusInRoute, 1)
	assert.True(t, d.AdvanceVisible)
	assert.Equal(t, "Entregar", d.ActionLabel)
	assert.True(t, d.ImageActionVisible)
	assert.Equal(t, "Agregar foto descarga", d.ImageLabel)
}
