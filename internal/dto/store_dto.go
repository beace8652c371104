package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type StoreRequest struct {
	Name      string  `json:"name"      validate:"required,min=2,max=120"`
	Provincia *string `json:"provincia" validate:"omitempty,max=80"`
	Formato   *string `json:"formato"   validate:"omitempty,max=60"`
	Cliente   *string `json:"cliente"   validate:"omitempty,max=120"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type StoreResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Provincia *string `json:"provincia"`
	Formato   *string `json:"formato"`
	Cliente   *string `json:"cliente"`
}
