package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/primex-howard/tclass-gateway/internal/models"
)

// MessageResult is the minimal mutation acknowledgement shape.
type MessageResult struct {
	Message string `json:"message"`
}

// PeriodList is the student periods payload.
type PeriodList struct {
	Periods        []models.Period `json:"periods"`
	ActivePeriodID *int            `json:"active_period_id"`
}

// CourseList is the student course catalog payload.
type CourseList struct {
	Courses []models.Course `json:"courses"`
}

// PreEnlistedList is the student pre-enlisted lines payload.
type PreEnlistedList struct {
	PreEnlisted []models.PreEnlistedSubject `json:"pre_enlisted"`
}

// EnrolledSubjectsResult is the per-period enrolled subjects payload.
type EnrolledSubjectsResult struct {
	EnrolledSubjects []models.EnrolledSubject `json:"enrolled_subjects"`
	Official         bool                     `json:"official"`
	EnrollmentStatus models.OverallStatus     `json:"enrollment_status"`
	TotalUnits       float64                  `json:"total_units"`
}

// CurriculumEvaluation is the curriculum evaluation payload.
type CurriculumEvaluation struct {
	Evaluation []models.CurriculumEntry `json:"evaluation"`
}

// EnrollmentReview is the admin review queue payload.
type EnrollmentReview struct {
	Periods     []models.Period            `json:"periods"`
	Enrollments []models.EnrollmentRequest `json:"enrollments"`
}

// AdmissionList is the admin admissions payload.
type AdmissionList struct {
	Applications []models.AdmissionApplication `json:"applications"`
}

// ApprovalResult carries the one-time credential pair issued on approval.
type ApprovalResult struct {
	Message            string                     `json:"message"`
	CredentialsPreview *models.CredentialsPreview `json:"credentials_preview"`
}

// StudentPeriods lists periods and the active period id.
func (c *Client) StudentPeriods(ctx context.Context, token string) (*PeriodList, error) {
	var out PeriodList
	if err := c.get(ctx, token, "/student/periods", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// StudentCourses lists the course catalog.
func (c *Client) StudentCourses(ctx context.Context, token string) (*CourseList, error) {
	var out CourseList
	if err := c.get(ctx, token, "/student/courses", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PreEnlisted lists pre-enlisted lines for a period.
func (c *Client) PreEnlisted(ctx context.Context, token string, periodID int) (*PreEnlistedList, error) {
	var out PreEnlistedList
	if err := c.get(ctx, token, pathf("/student/enrollments/pre-enlisted?period_id=%d", periodID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnrolledSubjects lists approved lines for a period with derived fields.
func (c *Client) EnrolledSubjects(ctx context.Context, token string, periodID int) (*EnrolledSubjectsResult, error) {
	var out EnrolledSubjectsResult
	if err := c.get(ctx, token, pathf("/student/enrollments/enrolled-subjects?period_id=%d", periodID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddCourse pre-enlists a course for a period.
func (c *Client) AddCourse(ctx context.Context, token string, courseID, periodID int) (*MessageResult, error) {
	body := map[string]int{"course_id": courseID, "period_id": periodID}
	var out MessageResult
	if err := c.do(ctx, token, http.MethodPost, "/student/enrollments/add", body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// AutoPreEnlist asks the upstream to fill the pre-enlisted list.
func (c *Client) AutoPreEnlist(ctx context.Context, token string, periodID int) (*MessageResult, error) {
	body := map[string]int{"period_id": periodID}
	var out MessageResult
	if err := c.do(ctx, token, http.MethodPost, "/student/enrollments/auto", body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePreEnlisted removes a single draft line.
func (c *Client) DeletePreEnlisted(ctx context.Context, token string, id int) (*MessageResult, error) {
	var out MessageResult
	if err := c.do(ctx, token, http.MethodDelete, pathf("/student/enrollments/%d", id), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClearPreEnlisted removes all draft lines for the given period only.
func (c *Client) ClearPreEnlisted(ctx context.Context, token string, periodID int) (*MessageResult, error) {
	var out MessageResult
	if err := c.do(ctx, token, http.MethodDelete, pathf("/student/enrollments?period_id=%d", periodID), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// Assess submits the pre-enlisted batch for admin review.
func (c *Client) Assess(ctx context.Context, token string, periodID int) (*MessageResult, error) {
	body := map[string]int{"period_id": periodID}
	var out MessageResult
	if err := c.do(ctx, token, http.MethodPost, "/student/enrollments/assess", body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurriculumEvaluation fetches the student's curriculum progress.
func (c *Client) CurriculumEvaluation(ctx context.Context, token string) (*CurriculumEvaluation, error) {
	var out CurriculumEvaluation
	if err := c.get(ctx, token, "/student/curriculum-evaluation", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEnrollments fetches the admin review queue with optional filters.
func (c *Client) ListEnrollments(ctx context.Context, token, status string, periodID string) (*EnrollmentReview, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if periodID != "" {
		query.Set("period_id", periodID)
	}
	path := "/admin/enrollments"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var out EnrollmentReview
	if err := c.get(ctx, token, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DecideEnrollment applies an admin verdict to an assessed line.
func (c *Client) DecideEnrollment(ctx context.Context, token string, id int, status models.EnrollmentStatus, remarks *string) (*MessageResult, error) {
	body := map[string]interface{}{"status": status, "remarks": remarks}
	var out MessageResult
	if err := c.do(ctx, token, http.MethodPatch, pathf("/admin/enrollments/%d", id), body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivatePeriod makes the period the single active one; the upstream
// deactivates the previous one as part of the same action.
func (c *Client) ActivatePeriod(ctx context.Context, token string, id int) (*MessageResult, error) {
	var out MessageResult
	if err := c.do(ctx, token, http.MethodPatch, pathf("/admin/enrollment-periods/%d/activate", id), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAdmissions fetches all admission applications.
func (c *Client) ListAdmissions(ctx context.Context, token string) (*AdmissionList, error) {
	var out AdmissionList
	if err := c.get(ctx, token, "/admin/admissions", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveAdmission approves an application. The upstream provisions the
// user account and returns the display-once credential pair.
func (c *Client) ApproveAdmission(ctx context.Context, token string, id int) (*ApprovalResult, error) {
	var out ApprovalResult
	if err := c.do(ctx, token, http.MethodPost, pathf("/admin/admissions/%d/approve", id), nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// RejectAdmission rejects an application with the given reason.
func (c *Client) RejectAdmission(ctx context.Context, token string, id int, remarks string) (*MessageResult, error) {
	body := map[string]string{"remarks": remarks}
	var out MessageResult
	if err := c.do(ctx, token, http.MethodPost, pathf("/admin/admissions/%d/reject", id), body, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}
