package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primex-howard/tclass-gateway/internal/auth"
	"github.com/primex-howard/tclass-gateway/internal/models"
	"github.com/primex-howard/tclass-gateway/internal/upstream"
	appErrors "github.com/primex-howard/tclass-gateway/pkg/errors"
)

type admissionAPIMock struct {
	list *upstream.AdmissionList
	err  error

	approveCalls int
	rejectCalls  int
	lastRemarks  string
}

func (m *admissionAPIMock) ListAdmissions(context.Context, string) (*upstream.AdmissionList, error) {
	return m.list, m.err
}

func (m *admissionAPIMock) ApproveAdmission(context.Context, string, int) (*upstream.ApprovalResult, error) {
	m.approveCalls++
	if m.err != nil {
		return nil, m.err
	}
	return &upstream.ApprovalResult{
		Message: "Approved.",
		CredentialsPreview: &models.CredentialsPreview{
			StudentNumber:     "2026-0042",
			TemporaryPassword: "temp-pass",
		},
	}, nil
}

func (m *admissionAPIMock) RejectAdmission(_ context.Context, _ string, _ int, remarks string) (*upstream.MessageResult, error) {
	m.rejectCalls++
	m.lastRemarks = remarks
	if m.err != nil {
		return nil, m.err
	}
	return &upstream.MessageResult{Message: "Rejected."}, nil
}

var adminSession = auth.Session{Token: "tok", Role: auth.RoleAdmin}

func TestAdmissionServiceQueue(t *testing.T) {
	api := &admissionAPIMock{list: &upstream.AdmissionList{Applications: []models.AdmissionApplication{
		{ID: 1, Status: models.AdmissionStatusPending},
		{ID: 2, Status: models.AdmissionStatusApproved},
		{ID: 3, Status: models.AdmissionStatusRejected},
		{ID: 4, Status: models.AdmissionStatusPending},
	}}}
	svc := NewAdmissionService(api, nil)

	queue, err := svc.Queue(context.Background(), adminSession)
	require.NoError(t, err)

	require.Len(t, queue.Pending, 2)
	assert.Equal(t, 1, queue.Pending[0].ID)
	assert.Equal(t, 4, queue.Pending[1].ID)
	require.Len(t, queue.Decided, 2)
}

func TestAdmissionServiceApprove(t *testing.T) {
	t.Run("relays the credential pair", func(t *testing.T) {
		api := &admissionAPIMock{}
		svc := NewAdmissionService(api, nil)

		decision, err := svc.Approve(context.Background(), adminSession, 7)
		require.NoError(t, err)
		require.NotNil(t, decision.Credentials)
		assert.Equal(t, "2026-0042", decision.Credentials.StudentNumber)
		assert.Equal(t, "temp-pass", decision.Credentials.TemporaryPassword)
	})

	t.Run("invalid id refused locally", func(t *testing.T) {
		api := &admissionAPIMock{}
		svc := NewAdmissionService(api, nil)

		_, err := svc.Approve(context.Background(), adminSession, 0)
		require.Error(t, err)
		assert.Zero(t, api.approveCalls)
	})
}

func TestAdmissionServiceReject(t *testing.T) {
	t.Run("requires a reason before any network call", func(t *testing.T) {
		api := &admissionAPIMock{}
		svc := NewAdmissionService(api, nil)

		for _, reason := range []string{"", "   ", "\t\n"} {
			_, err := svc.Reject(context.Background(), adminSession, 5, reason)
			require.Error(t, err)

			var appErr *appErrors.Error
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
		}
		assert.Zero(t, api.rejectCalls, "blank reasons never reach the upstream")
	})

	t.Run("trims the reason", func(t *testing.T) {
		api := &admissionAPIMock{}
		svc := NewAdmissionService(api, nil)

		message, err := svc.Reject(context.Background(), adminSession, 5, "  incomplete documents  ")
		require.NoError(t, err)
		assert.Equal(t, "Rejected.", message)
		assert.Equal(t, "incomplete documents", api.lastRemarks)
	})

	t.Run("propagates upstream failure", func(t *testing.T) {
		api := &admissionAPIMock{err: appErrors.Upstream(409, "Already decided.")}
		svc := NewAdmissionService(api, nil)

		_, err := svc.Reject(context.Background(), adminSession, 5, "late")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Already decided.")
	})
}
