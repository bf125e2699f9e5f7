package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Egreso gasto registrado en caja. Recurso CRUD plano, sin estado derivado.
type Egreso struct {
	ID          int64
	Fecha       time.Time
	Monto       decimal.Decimal
	Descripcion string
	TipoPago    string
	CreatedAt   time.Time
}
