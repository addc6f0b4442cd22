package dto

// IngestRequest describes one statement file submitted for ingestion.
type IngestRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	Bank     string `json:"bank" validate:"required,bank"`
	Filename string `json:"filename" validate:"required,statement_file"`
}

// ReportRequest narrows an analytics report to a user and an optional
// date range.
type ReportRequest struct {
	UserID    string `json:"user_id" validate:"required,uuid"`
	StartDate string `json:"start_date,omitempty" validate:"omitempty,date"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,date"`
	Category  string `json:"category,omitempty" validate:"omitempty,category"`
}

// CategoryOverrideRequest corrects the stored category of one
// transaction; overrides become training labels on the next run.
type CategoryOverrideRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,uuid"`
	Category      string `json:"category" validate:"required,category"`
}

// CreateUserRequest registers a new user.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SeedRequest generates synthetic statement history for a user.
type SeedRequest struct {
	UserID   string `json:"user_id" validate:"required,uuid"`
	Months   int    `json:"months" validate:"required,min=1,max=36"`
	PerMonth int    `json:"per_month" validate:"required,min=3,max=200"`
}
