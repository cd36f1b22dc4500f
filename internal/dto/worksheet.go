package dto

import "github.com/primex-howard/tclass-gateway/internal/models"

// Worksheet is the student enrollment page's base payload: the period list
// and the full course catalog.
type Worksheet struct {
	Periods          []models.Period `json:"periods"`
	ActivePeriodID   *int            `json:"active_period_id"`
	SelectedPeriodID int             `json:"selected_period_id"`
	Courses          []models.Course `json:"courses"`
}

// PeriodData is the per-period slice of the worksheet with every derived
// value precomputed, so views render without further arithmetic.
type PeriodData struct {
	PeriodID           int                         `json:"period_id"`
	PreEnlisted        []models.PreEnlistedSubject `json:"pre_enlisted"`
	EnrolledSubjects   []models.EnrolledSubject    `json:"enrolled_subjects"`
	AvailableCourses   []models.Course             `json:"available_courses"`
	Official           bool                        `json:"official"`
	EnrollmentStatus   models.OverallStatus        `json:"enrollment_status"`
	TotalPendingUnits  float64                     `json:"total_pending_units"`
	TotalOfficialUnits float64                     `json:"total_official_units"`
}

// Evaluation is the curriculum evaluation report payload.
type Evaluation struct {
	Evaluation []models.CurriculumEntry `json:"evaluation"`
}

// EnrolledReport is the per-period enrolled subjects report payload.
type EnrolledReport struct {
	PeriodID         int                      `json:"period_id"`
	EnrolledSubjects []models.EnrolledSubject `json:"enrolled_subjects"`
	EnrollmentStatus models.OverallStatus     `json:"enrollment_status"`
	TotalUnits       float64                  `json:"total_units"`
}
