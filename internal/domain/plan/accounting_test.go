package plan

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRemainingHours(t *testing.T) {
	info := &Info{Price: decimal.NewFromInt(50), Hours: 12}

	cases := []struct {
		name string
		info *Info
		used int
		want int
	}{
		{"sin consumo", info, 0, 12},
		{"consumo parcial", info, 5, 7},
		{"consumo exacto", info, 12, 0},
		{"consumo excedido nunca es negativo", info, 20, 0},
		{"plan desconocido cuenta como 0 horas", nil, 0, 0},
		{"plan desconocido con consumo", nil, 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RemainingHours(tc.info, tc.used))
			assert.GreaterOrEqual(t, RemainingHours(tc.info, tc.used), 0,
				"las horas restantes nunca son negativas")
		})
	}
}

func TestFinished(t *testing.T) {
	info := &Info{Price: decimal.NewFromInt(36), Hours: 8}

	assert.False(t, Finished(info, 7), "con horas restantes el plan sigue activo")
	assert.True(t, Finished(info, 8), "al llegar a las horas incluidas el plan termina")
	assert.True(t, Finished(info, 9), "excedido también cuenta como terminado")
	assert.True(t, Finished(nil, 0), "plan desconocido se considera terminado")
}

func TestRemainingBalance(t *testing.T) {
	info := &Info{Price: decimal.NewFromInt(50), Hours: 12}

	// Deuda: precio menos abono.
	saldo := RemainingBalance(info, decimal.NewFromInt(20))
	assert.True(t, saldo.Equal(decimal.NewFromInt(30)), "50-20 debe ser 30, fue %s", saldo)

	// Pago exacto.
	assert.True(t, RemainingBalance(info, decimal.NewFromInt(50)).IsZero())

	// Sobrepago: el crédito se reporta negativo, nunca se recorta a cero.
	credito := RemainingBalance(info, decimal.NewFromInt(65))
	assert.True(t, credito.Equal(decimal.NewFromInt(-15)), "sobrepago debe quedar en -15, fue %s", credito)

	// Plan desconocido: precio 0, todo abono es crédito.
	assert.True(t, RemainingBalance(nil, decimal.NewFromInt(10)).Equal(decimal.NewFromInt(-10)))
}
