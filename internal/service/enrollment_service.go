package service

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/primex-howard/tclass-gateway/internal/auth"
	"github.com/primex-howard/tclass-gateway/internal/dto"
	"github.com/primex-howard/tclass-gateway/internal/models"
	"github.com/primex-howard/tclass-gateway/internal/upstream"
	appErrors "github.com/primex-howard/tclass-gateway/pkg/errors"
)

// Cache keys for catalog reads. The catalog and period list are global
// data; caching them under shared keys is safe across sessions.
const (
	cacheKeyPeriods = "catalog:periods"
	cacheKeyCourses = "catalog:courses"
	cachePatternAll = "catalog:*"
)

type studentAPI interface {
	StudentPeriods(ctx context.Context, token string) (*upstream.PeriodList, error)
	StudentCourses(ctx context.Context, token string) (*upstream.CourseList, error)
	PreEnlisted(ctx context.Context, token string, periodID int) (*upstream.PreEnlistedList, error)
	EnrolledSubjects(ctx context.Context, token string, periodID int) (*upstream.EnrolledSubjectsResult, error)
	AddCourse(ctx context.Context, token string, courseID, periodID int) (*upstream.MessageResult, error)
	AutoPreEnlist(ctx context.Context, token string, periodID int) (*upstream.MessageResult, error)
	DeletePreEnlisted(ctx context.Context, token string, id int) (*upstream.MessageResult, error)
	ClearPreEnlisted(ctx context.Context, token string, periodID int) (*upstream.MessageResult, error)
	Assess(ctx context.Context, token string, periodID int) (*upstream.MessageResult, error)
}

// AddCourseRequest describes a pre-enlist insertion.
type AddCourseRequest struct {
	CourseID int `json:"course_id" validate:"required,gt=0"`
	PeriodID int `json:"period_id" validate:"required,gt=0"`
}

// PeriodActionRequest targets a whole period (auto pre-enlist, assess, clear).
type PeriodActionRequest struct {
	PeriodID int `json:"period_id" validate:"required,gt=0"`
}

// EnrollmentService drives the student enrollment worksheet.
type EnrollmentService struct {
	api       studentAPI
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(api studentAPI, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{api: api, cache: cache, validator: validate, logger: logger}
}

// Worksheet loads the period list and course catalog. The two reads are
// independent and issued concurrently; both must land before the selected
// period is derived.
func (s *EnrollmentService) Worksheet(ctx context.Context, session auth.Session) (*dto.Worksheet, error) {
	var (
		wg         sync.WaitGroup
		periods    *upstream.PeriodList
		courses    *upstream.CourseList
		periodsErr error
		coursesErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		periods, periodsErr = s.loadPeriods(ctx, session.Token)
	}()
	go func() {
		defer wg.Done()
		courses, coursesErr = s.loadCourses(ctx, session.Token)
	}()
	wg.Wait()

	if periodsErr != nil {
		return nil, periodsErr
	}
	if coursesErr != nil {
		return nil, coursesErr
	}

	selected := 0
	if periods.ActivePeriodID != nil {
		selected = *periods.ActivePeriodID
	} else if len(periods.Periods) > 0 {
		selected = periods.Periods[0].ID
	}

	return &dto.Worksheet{
		Periods:          periods.Periods,
		ActivePeriodID:   periods.ActivePeriodID,
		SelectedPeriodID: selected,
		Courses:          courses.Courses,
	}, nil
}

// PeriodData loads the pre-enlisted and enrolled lines for one period and
// computes every derived value the worksheet shows.
func (s *EnrollmentService) PeriodData(ctx context.Context, session auth.Session, periodID int) (*dto.PeriodData, error) {
	if periodID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "period_id is required")
	}

	var (
		wg          sync.WaitGroup
		pre         *upstream.PreEnlistedList
		enrolled    *upstream.EnrolledSubjectsResult
		courses     *upstream.CourseList
		preErr      error
		enrolledErr error
		coursesErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		pre, preErr = s.api.PreEnlisted(ctx, session.Token, periodID)
	}()
	go func() {
		defer wg.Done()
		enrolled, enrolledErr = s.api.EnrolledSubjects(ctx, session.Token, periodID)
	}()
	go func() {
		defer wg.Done()
		courses, coursesErr = s.loadCourses(ctx, session.Token)
	}()
	wg.Wait()

	for _, err := range []error{preErr, enrolledErr, coursesErr} {
		if err != nil {
			return nil, err
		}
	}

	status := enrolled.EnrollmentStatus
	if status == "" {
		status = models.DeriveOverallStatus(enrolled.EnrolledSubjects)
	}

	return &dto.PeriodData{
		PeriodID:           periodID,
		PreEnlisted:        pre.PreEnlisted,
		EnrolledSubjects:   enrolled.EnrolledSubjects,
		AvailableCourses:   models.AvailableCourses(courses.Courses, pre.PreEnlisted, enrolled.EnrolledSubjects),
		Official:           enrolled.Official,
		EnrollmentStatus:   status,
		TotalPendingUnits:  models.TotalPendingUnits(pre.PreEnlisted),
		TotalOfficialUnits: models.TotalOfficialUnits(enrolled.EnrolledSubjects),
	}, nil
}

// AddCourse pre-enlists a course after the set-membership check: a course
// already pre-enlisted (draft/pending band) or already enrolled cannot be
// re-added. Rejected and dropped lines do not block.
func (s *EnrollmentService) AddCourse(ctx context.Context, session auth.Session, req AddCourseRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid add course payload")
	}

	pre, err := s.api.PreEnlisted(ctx, session.Token, req.PeriodID)
	if err != nil {
		return "", err
	}
	for _, line := range pre.PreEnlisted {
		if line.CourseID == req.CourseID && line.Status.BlocksReAdd() {
			return "", appErrors.Clone(appErrors.ErrConflict, "subject is already pre-enlisted for this period")
		}
	}
	enrolled, err := s.api.EnrolledSubjects(ctx, session.Token, req.PeriodID)
	if err != nil {
		return "", err
	}
	for _, line := range enrolled.EnrolledSubjects {
		if line.CourseID == req.CourseID {
			return "", appErrors.Clone(appErrors.ErrConflict, "subject is already enrolled for this period")
		}
	}

	res, err := s.api.AddCourse(ctx, session.Token, req.CourseID, req.PeriodID)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// AutoPreEnlist asks the upstream to fill the worksheet for the period.
func (s *EnrollmentService) AutoPreEnlist(ctx context.Context, session auth.Session, req PeriodActionRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid auto pre-enlist payload")
	}
	res, err := s.api.AutoPreEnlist(ctx, session.Token, req.PeriodID)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// DeleteLine removes a single draft line.
func (s *EnrollmentService) DeleteLine(ctx context.Context, session auth.Session, id int) (string, error) {
	if id <= 0 {
		return "", appErrors.Clone(appErrors.ErrValidation, "select a pre-enlisted row to delete")
	}
	res, err := s.api.DeletePreEnlisted(ctx, session.Token, id)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// ClearPeriod bulk-clears the draft lines of one period, leaving other
// periods' drafts untouched.
func (s *EnrollmentService) ClearPeriod(ctx context.Context, session auth.Session, periodID int) (string, error) {
	if periodID <= 0 {
		return "", appErrors.Clone(appErrors.ErrValidation, "period_id is required")
	}
	res, err := s.api.ClearPreEnlisted(ctx, session.Token, periodID)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// Assess submits the period's pre-enlisted batch for review.
func (s *EnrollmentService) Assess(ctx context.Context, session auth.Session, req PeriodActionRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assess payload")
	}
	res, err := s.api.Assess(ctx, session.Token, req.PeriodID)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

func (s *EnrollmentService) loadPeriods(ctx context.Context, token string) (*upstream.PeriodList, error) {
	var cached upstream.PeriodList
	if hit, _ := s.cache.Get(ctx, cacheKeyPeriods, &cached); hit {
		return &cached, nil
	}
	periods, err := s.api.StudentPeriods(ctx, token)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, cacheKeyPeriods, periods, 0)
	return periods, nil
}

func (s *EnrollmentService) loadCourses(ctx context.Context, token string) (*upstream.CourseList, error) {
	var cached upstream.CourseList
	if hit, _ := s.cache.Get(ctx, cacheKeyCourses, &cached); hit {
		return &cached, nil
	}
	courses, err := s.api.StudentCourses(ctx, token)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, cacheKeyCourses, courses, 0)
	return courses, nil
}
