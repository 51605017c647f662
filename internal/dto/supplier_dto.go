package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateSupplierRequest struct {
	Name          string  `json:"name"           validate:"required,min=2,max=200"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"          validate:"omitempty,min=7,max=20"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Address       *string `json:"address"`
	// GSTIN is 15 characters when present: 2-digit state code, 10-char PAN,
	// entity digit, "Z", checksum.
	GSTIN *string `json:"gstin" validate:"omitempty,len=15"`
}

// UpdateSupplierRequest is the closed set of updatable supplier fields.
type UpdateSupplierRequest struct {
	Name          *string `json:"name"           validate:"omitempty,min=2,max=200"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"          validate:"omitempty,min=7,max=20"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Address       *string `json:"address"`
	GSTIN         *string `json:"gstin"          validate:"omitempty,len=15"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type SupplierResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	GSTIN         *string `json:"gstin,omitempty"`
}
