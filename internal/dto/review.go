package dto

import "github.com/primex-howard/tclass-gateway/internal/models"

// ReviewQueue is the admin enrollment review payload.
type ReviewQueue struct {
	Periods        []models.Period            `json:"periods"`
	ActivePeriodID *int                       `json:"active_period_id"`
	Enrollments    []models.EnrollmentRequest `json:"enrollments"`
}

// AdmissionQueue is the admin admissions payload, split by actionability:
// only pending applications accept decisions, the rest are read-only.
type AdmissionQueue struct {
	Pending []models.AdmissionApplication `json:"pending"`
	Decided []models.AdmissionApplication `json:"decided"`
}

// AdmissionDecision is the outcome of an approve call. The credential pair
// is display-once; it exists only in this response.
type AdmissionDecision struct {
	Message     string                     `json:"message"`
	Credentials *models.CredentialsPreview `json:"credentials_preview,omitempty"`
}
