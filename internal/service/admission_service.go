package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/primex-howard/tclass-gateway/internal/auth"
	"github.com/primex-howard/tclass-gateway/internal/dto"
	"github.com/primex-howard/tclass-gateway/internal/upstream"
	appErrors "github.com/primex-howard/tclass-gateway/pkg/errors"
)

type admissionAPI interface {
	ListAdmissions(ctx context.Context, token string) (*upstream.AdmissionList, error)
	ApproveAdmission(ctx context.Context, token string, id int) (*upstream.ApprovalResult, error)
	RejectAdmission(ctx context.Context, token string, id int, remarks string) (*upstream.MessageResult, error)
}

// AdmissionService drives the admin admission review queue.
type AdmissionService struct {
	api    admissionAPI
	logger *zap.Logger
}

// NewAdmissionService constructs AdmissionService.
func NewAdmissionService(api admissionAPI, logger *zap.Logger) *AdmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdmissionService{api: api, logger: logger}
}

// Queue lists applications split by actionability. Pending applications
// accept approve/reject, decided ones are read-only history.
func (s *AdmissionService) Queue(ctx context.Context, session auth.Session) (*dto.AdmissionQueue, error) {
	list, err := s.api.ListAdmissions(ctx, session.Token)
	if err != nil {
		return nil, err
	}

	queue := &dto.AdmissionQueue{}
	for _, app := range list.Applications {
		if app.Status.Actionable() {
			queue.Pending = append(queue.Pending, app)
		} else {
			queue.Decided = append(queue.Decided, app)
		}
	}
	return queue, nil
}

// Approve approves a pending application. The upstream provisions the
// student account and returns a display-once credential pair. The pair is
// relayed verbatim to the caller and never logged or stored.
func (s *AdmissionService) Approve(ctx context.Context, session auth.Session, id int) (*dto.AdmissionDecision, error) {
	if id <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "application id is required")
	}
	res, err := s.api.ApproveAdmission(ctx, session.Token, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("admission approved", zap.Int("application_id", id))
	return &dto.AdmissionDecision{
		Message:     res.Message,
		Credentials: res.CredentialsPreview,
	}, nil
}

// Reject rejects a pending application. A non-empty reason is required;
// a blank or whitespace-only reason is refused without touching the
// upstream at all.
func (s *AdmissionService) Reject(ctx context.Context, session auth.Session, id int, reason string) (string, error) {
	if id <= 0 {
		return "", appErrors.Clone(appErrors.ErrValidation, "application id is required")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "a rejection reason is required")
	}

	res, err := s.api.RejectAdmission(ctx, session.Token, id, reason)
	if err != nil {
		return "", err
	}
	s.logger.Info("admission rejected", zap.Int("application_id", id))
	return res.Message, nil
}
