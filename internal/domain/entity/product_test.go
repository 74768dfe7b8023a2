package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invorya/inventario-core/internal/domain/entity"
)

func TestCheckStock(t *testing.T) {
	cases := []struct {
		name     string
		quantity int64
		low      int64
		high     int64
		want     string
	}{
		{"bajo el umbral inferior", 3, 10, 50, entity.StockLow},
		{"exactamente en el umbral inferior", 10, 10, 50, entity.StockLow},
		{"cero con umbral positivo", 0, 10, 50, entity.StockLow},
		{"en rango normal", 25, 10, 50, entity.StockNormal},
		{"justo sobre el umbral inferior", 11, 10, 50, entity.StockNormal},
		{"exactamente en el umbral superior", 50, 10, 50, entity.StockHigh},
		{"sobre el umbral superior", 80, 10, 50, entity.StockHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := entity.Product{Quantity: tc.quantity, LowThreshold: tc.low, HighThreshold: tc.high}
			assert.Equal(t, tc.want, p.CheckStock())
		})
	}
}

// Con umbrales solapados (low >= high) la comparación inferior se evalúa
// primero, así que "low" gana sobre "high" en la zona de solape.
func TestCheckStock_UmbralesSolapados(t *testing.T) {
	p := entity.Product{Quantity: 15, LowThreshold: 20, HighThreshold: 10}
	assert.Equal(t, entity.StockLow, p.CheckStock())

	p = entity.Product{Quantity: 25, LowThreshold: 20, HighThreshold: 10}
	assert.Equal(t, entity.StockHigh, p.CheckStock())
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleAdmin))
	assert.True(t, entity.ValidRole(entity.RoleManager))
	assert.True(t, entity.ValidRole(entity.RoleStaff))
	assert.False(t, entity.ValidRole("superadmin"))
	assert.False(t, entity.ValidRole(""))
}

func TestValidAction(t *testing.T) {
	assert.True(t, entity.ValidAction(entity.ActionAdd))
	assert.True(t, entity.ValidAction(entity.ActionRemove))
	assert.True(t, entity.ValidAction(entity.ActionAdjust))
	assert.False(t, entity.ValidAction("transfer"))
	assert.False(t, entity.ValidAction(""))
}
