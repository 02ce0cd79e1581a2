package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterStock(t *testing.T) {
	cards := SampleStock()

	assert.Len(t, FilterStock(cards, ""), len(cards))
	assert.Len(t, FilterStock(cards, "  "), len(cards))

	got := FilterStock(cards, "temizlik")
	if assert.Len(t, got, 2) {
		assert.Equal(t, "STK003", got[0].Code)
		assert.Equal(t, "STK004", got[1].Code)
	}

	got = FilterStock(cards, "stk00")
	assert.Len(t, got, len(cards))

	assert.Empty(t, FilterStock(cards, "yok-boyle-bir-sey"))
}

func TestMovementTotals(t *testing.T) {
	m := SampleMovements()[0]
	assert.InDelta(t, 15000.0, m.Total(), 0.001)
	assert.InDelta(t, 17700.0, m.TotalWithVAT(), 0.001)
}

func TestFilterMovements(t *testing.T) {
	ms := SampleMovements()
	assert.Len(t, FilterMovements(ms, ""), len(ms))

	sales := FilterMovements(ms, "Satış Faturası")
	assert.Len(t, sales, 2)
	for _, m := range sales {
		assert.Equal(t, "Satış Faturası", m.DocumentType)
	}
	assert.Empty(t, FilterMovements(ms, "Sayım Eksiği"))
}

func TestStockUnitExclusivePrices(t *testing.T) {
	u := SampleUnits()[0]
	assert.InDelta(t, 83.33, u.SaleExcl(20), 0.001)
	assert.InDelta(t, 0.0, u.PurchaseExcl(20), 0.001)
}
