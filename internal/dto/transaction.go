package dto

type TransactionStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=approved completed rejected" example:"approved"`
	Notes  string `json:"notes" validate:"omitempty,max=500" example:"cleared by back office"`
}
