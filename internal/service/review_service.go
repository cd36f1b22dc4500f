package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/primex-howard/tclass-gateway/internal/auth"
	"github.com/primex-howard/tclass-gateway/internal/dto"
	"github.com/primex-howard/tclass-gateway/internal/models"
	"github.com/primex-howard/tclass-gateway/internal/upstream"
	appErrors "github.com/primex-howard/tclass-gateway/pkg/errors"
)

type reviewAPI interface {
	ListEnrollments(ctx context.Context, token, status, periodID string) (*upstream.EnrollmentReview, error)
	DecideEnrollment(ctx context.Context, token string, id int, status models.EnrollmentStatus, remarks *string) (*upstream.MessageResult, error)
	ActivatePeriod(ctx context.Context, token string, id int) (*upstream.MessageResult, error)
}

// ReviewFilter narrows the admin enrollment queue.
type ReviewFilter struct {
	Status   string
	PeriodID string
}

// DecideEnrollmentRequest carries an admin verdict. Only the two terminal
// verdicts are accepted; anything else is refused before the network.
type DecideEnrollmentRequest struct {
	Status  models.EnrollmentStatus `json:"status" validate:"required,oneof=official rejected"`
	Remarks *string                 `json:"remarks"`
}

// ReviewService drives the admin enrollment review queue.
type ReviewService struct {
	api       reviewAPI
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReviewService constructs ReviewService.
func NewReviewService(api reviewAPI, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ReviewService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewService{api: api, cache: cache, validator: validate, logger: logger}
}

// Queue lists enrollment requests with optional status and period filters.
func (s *ReviewService) Queue(ctx context.Context, session auth.Session, filter ReviewFilter) (*dto.ReviewQueue, error) {
	review, err := s.api.ListEnrollments(ctx, session.Token, filter.Status, filter.PeriodID)
	if err != nil {
		return nil, err
	}

	var activeID *int
	for _, period := range review.Periods {
		if period.Active() {
			id := period.ID
			activeID = &id
			break
		}
	}

	return &dto.ReviewQueue{
		Periods:        review.Periods,
		ActivePeriodID: activeID,
		Enrollments:    review.Enrollments,
	}, nil
}

// Decide applies a verdict to an assessed line. The upstream owns the
// unofficial-only precondition; the gateway refuses malformed verdicts.
func (s *ReviewService) Decide(ctx context.Context, session auth.Session, id int, req DecideEnrollmentRequest) (string, error) {
	if id <= 0 {
		return "", appErrors.Clone(appErrors.ErrValidation, "enrollment id is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid decision payload")
	}

	res, err := s.api.DecideEnrollment(ctx, session.Token, id, req.Status, req.Remarks)
	if err != nil {
		return "", err
	}
	s.logger.Info("enrollment decided",
		zap.Int("enrollment_id", id),
		zap.String("status", string(req.Status)),
	)
	return res.Message, nil
}

// ActivatePeriod makes the period the single active one and drops the
// cached catalog so students see the change on their next load.
func (s *ReviewService) ActivatePeriod(ctx context.Context, session auth.Session, id int) (string, error) {
	if id <= 0 {
		return "", appErrors.Clone(appErrors.ErrValidation, "period id is required")
	}
	res, err := s.api.ActivatePeriod(ctx, session.Token, id)
	if err != nil {
		return "", err
	}
	_ = s.cache.Invalidate(ctx, cachePatternAll)
	s.logger.Info("enrollment period activated", zap.Int("period_id", id))
	return res.Message, nil
}
