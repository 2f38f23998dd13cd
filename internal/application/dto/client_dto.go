package dto

// CreateClientRequest body para POST /api/clients. Todos los campos llegan
// como Raw para validarlos con los parsers del caso de uso en lugar de
// confiar en el tipado del JSON.
type CreateClientRequest struct {
	Name              Raw `json:"name"`
	DNI               Raw `json:"dni"`
	Representative    Raw `json:"representative"`
	RepresentativeDNI Raw `json:"representative_dni"`
	Email             Raw `json:"email"`
	Address           Raw `json:"address"`
	Phone             Raw `json:"phone"`
	Plan              Raw `json:"plan"`
	Abono             Raw `json:"abono"`
	Hours             Raw `json:"hours"`
}

// UpdateClientRequest body para PUT /api/clients/:id. Solo los campos
// presentes se modifican; null explícito limpia los campos de texto.
type UpdateClientRequest struct {
	Name              Raw `json:"name"`
	DNI               Raw `json:"dni"`
	Representative    Raw `json:"representative"`
	RepresentativeDNI Raw `json:"representative_dni"`
	Email             Raw `json:"email"`
	Address           Raw `json:"address"`
	Phone             Raw `json:"phone"`
	Plan              Raw `json:"plan"`
	Abono             Raw `json:"abono"`
	Hours             Raw `json:"hours"`
}

// IncrementHoursRequest body para POST /api/clients/:id/hours.
type IncrementHoursRequest struct {
	Delta Raw `json:"delta"`
}

// PlanInfoResponse información de plan en respuestas (precio numérico).
type PlanInfoResponse struct {
	Price float64 `json:"price"`
	Hours int     `json:"hours"`
	Label string  `json:"label"`
}

// ClientResponse cliente enriquecido: fila persistida más planInfo resuelto
// del catálogo y las métricas derivadas de contabilidad de plan.
type ClientResponse struct {
	ID                int64             `json:"id"`
	Name              string            `json:"name"`
	DNI               *string           `json:"dni"`
	Representative    *string           `json:"representative"`
	RepresentativeDNI *string           `json:"representative_dni"`
	Email             *string           `json:"email"`
	Address           *string           `json:"address"`
	Phone             *string           `json:"phone"`
	Plan              string            `json:"plan"`
	Abono             float64           `json:"abono"`
	Hours             int               `json:"hours"`
	CreatedDate       string            `json:"created_date"`
	PlanInfo          *PlanInfoResponse `json:"planInfo"`
	RemainingHours    int               `json:"remaining_hours"`
	RemainingBalance  float64           `json:"remaining_balance"`
	Finished          bool              `json:"finished"`
}
