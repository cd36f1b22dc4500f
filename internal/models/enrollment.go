package models

// PreEnlistStatus is the lifecycle of a pre-enlisted line before and after
// assessment.
type PreEnlistStatus string

const (
	PreEnlistStatusDraft    PreEnlistStatus = "draft"
	PreEnlistStatusPending  PreEnlistStatus = "pending"
	PreEnlistStatusApproved PreEnlistStatus = "approved"
	PreEnlistStatusRejected PreEnlistStatus = "rejected"
	PreEnlistStatusDropped  PreEnlistStatus = "dropped"
)

// BlocksReAdd reports whether a line in this status keeps its course out of
// the available list. Rejected and dropped lines are terminal and release
// the course for re-adding.
func (s PreEnlistStatus) BlocksReAdd() bool {
	switch s {
	case PreEnlistStatusRejected, PreEnlistStatusDropped:
		return false
	}
	return true
}

// EnrollmentStatus is the lifecycle of an assessed enrollment request.
type EnrollmentStatus string

const (
	EnrollmentStatusDraft      EnrollmentStatus = "draft"
	EnrollmentStatusUnofficial EnrollmentStatus = "unofficial"
	EnrollmentStatusOfficial   EnrollmentStatus = "official"
	EnrollmentStatusRejected   EnrollmentStatus = "rejected"
	EnrollmentStatusDropped    EnrollmentStatus = "dropped"
)

// IsTerminal reports whether no further transition applies to the line.
func (s EnrollmentStatus) IsTerminal() bool {
	return s == EnrollmentStatusOfficial || s == EnrollmentStatusRejected || s == EnrollmentStatusDropped
}

// Decidable reports whether an admin decision may target this line. Only
// assessed, undecided lines are actionable.
func (s EnrollmentStatus) Decidable() bool {
	return s == EnrollmentStatusUnofficial
}

// ValidDecision reports whether the status is an acceptable admin verdict.
func ValidDecision(s EnrollmentStatus) bool {
	return s == EnrollmentStatusOfficial || s == EnrollmentStatusRejected
}

// PreEnlistedSubject is a draft enrollment line as the student sees it.
type PreEnlistedSubject struct {
	ID       int             `json:"id"`
	Status   PreEnlistStatus `json:"status"`
	Remarks  *string         `json:"remarks"`
	CourseID int             `json:"course_id"`
	Code     string          `json:"code"`
	Title    string          `json:"title"`
	Units    float64         `json:"units"`
	TF       float64         `json:"tf"`
	Lec      float64         `json:"lec"`
	Lab      float64         `json:"lab"`
	Schedule *string         `json:"schedule"`
	Section  *string         `json:"section"`
}

// EnrolledSubject is an approved line for a period.
type EnrolledSubject struct {
	ID         int     `json:"id"`
	Status     string  `json:"status"`
	CourseID   int     `json:"course_id"`
	Code       string  `json:"code"`
	Title      string  `json:"title"`
	Units      float64 `json:"units"`
	Schedule   *string `json:"schedule"`
	Room       *string `json:"room"`
	Instructor *string `json:"instructor"`
	Section    *string `json:"section"`
}

// EnrollmentRequest is an assessed request as the admin review queue shows it.
type EnrollmentRequest struct {
	ID           int              `json:"id"`
	Status       EnrollmentStatus `json:"status"`
	Remarks      *string          `json:"remarks"`
	RequestedAt  *string          `json:"requested_at"`
	AssessedAt   *string          `json:"assessed_at"`
	StudentName  string           `json:"student_name"`
	StudentEmail string           `json:"student_email"`
	CourseCode   string           `json:"course_code"`
	CourseTitle  string           `json:"course_title"`
	Units        float64          `json:"units"`
	Schedule     *string          `json:"schedule"`
	Section      *string          `json:"section"`
	PeriodID     *int             `json:"period_id"`
	PeriodName   *string          `json:"period_name"`
}

// OverallStatus is the derived per-period enrollment badge.
type OverallStatus string

const (
	OverallNotEnrolled OverallStatus = "not_enrolled"
	OverallUnofficial  OverallStatus = "unofficial"
	OverallOfficial    OverallStatus = "official"
)
