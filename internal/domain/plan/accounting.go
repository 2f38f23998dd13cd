package plan

import "github.com/shopspring/decimal"

// Funciones puras de contabilidad de plan. Se usan en todo punto donde se
// muestre o decida el estado de un cliente, siempre con la misma semántica:
// un plan desconocido (info nil) cuenta como 0 horas incluidas y precio 0.

// RemainingHours horas restantes del plan, nunca negativas.
func RemainingHours(info *Info, hoursUsed int) int {
	included := 0
	if info != nil {
		included = info.Hours
	}
	remaining := included - hoursUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Finished indica que el cliente agotó las horas incluidas.
func Finished(info *Info, hoursUsed int) bool {
	return RemainingHours(info, hoursUsed) <= 0
}

// RemainingBalance saldo pendiente: precio del plan menos abono. Positivo es
// deuda; negativo es crédito a favor del cliente y nunca se recorta a cero.
func RemainingBalance(info *Info, abono decimal.Decimal) decimal.Decimal {
	price := decimal.Zero
	if info != nil {
		price = info.Price
	}
	return price.Sub(abono)
}
