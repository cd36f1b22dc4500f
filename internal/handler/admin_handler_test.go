package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primex-howard/tclass-gateway/internal/auth"
	internalmiddleware "github.com/primex-howard/tclass-gateway/internal/middleware"
	"github.com/primex-howard/tclass-gateway/internal/models"
	"github.com/primex-howard/tclass-gateway/internal/service"
	"github.com/primex-howard/tclass-gateway/internal/upstream"
)

type adminUpstreamMock struct {
	rejectCalls int
}

func (m *adminUpstreamMock) ListEnrollments(context.Context, string, string, string) (*upstream.EnrollmentReview, error) {
	return &upstream.EnrollmentReview{
		Periods:     []models.Period{{ID: 1, Name: "1st Sem", IsActive: 1}},
		Enrollments: []models.EnrollmentRequest{{ID: 5, Status: models.EnrollmentStatusUnofficial, StudentName: "Ana Cruz"}},
	}, nil
}

func (m *adminUpstreamMock) DecideEnrollment(context.Context, string, int, models.EnrollmentStatus, *string) (*upstream.MessageResult, error) {
	return &upstream.MessageResult{Message: "Decided."}, nil
}

func (m *adminUpstreamMock) ActivatePeriod(context.Context, string, int) (*upstream.MessageResult, error) {
	return &upstream.MessageResult{Message: "Activated."}, nil
}

func (m *adminUpstreamMock) ListAdmissions(context.Context, string) (*upstream.AdmissionList, error) {
	return &upstream.AdmissionList{Applications: []models.AdmissionApplication{
		{ID: 1, FullName: "Ben Reyes", Status: models.AdmissionStatusPending},
		{ID: 2, FullName: "Cara Lim", Status: models.AdmissionStatusApproved},
	}}, nil
}

func (m *adminUpstreamMock) ApproveAdmission(context.Context, string, int) (*upstream.ApprovalResult, error) {
	return &upstream.ApprovalResult{
		Message: "Approved.",
		CredentialsPreview: &models.CredentialsPreview{
			StudentNumber:     "2026-0099",
			TemporaryPassword: "one-time",
		},
	}, nil
}

func (m *adminUpstreamMock) RejectAdmission(context.Context, string, int, string) (*upstream.MessageResult, error) {
	m.rejectCalls++
	return &upstream.MessageResult{Message: "Rejected."}, nil
}

func buildAdminRouter(api *adminUpstreamMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(internalmiddleware.ContextSessionKey, auth.Session{Token: "tok", Role: auth.RoleAdmin})
		c.Next()
	})

	reviewSvc := service.NewReviewService(api, nil, nil, nil)
	admissionSvc := service.NewAdmissionService(api, nil)
	h := NewAdminHandler(reviewSvc, admissionSvc)

	router.GET("/admin/enrollments", h.Enrollments)
	router.PATCH("/admin/enrollments/:id", h.DecideEnrollment)
	router.PATCH("/admin/enrollment-periods/:id/activate", h.ActivatePeriod)
	router.GET("/admin/admissions", h.Admissions)
	router.POST("/admin/admissions/:id/approve", h.ApproveAdmission)
	router.POST("/admin/admissions/:id/reject", h.RejectAdmission)
	return router
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAdminRoutes(t *testing.T) {
	api := &adminUpstreamMock{}
	router := buildAdminRouter(api)

	t.Run("enrollment queue carries the active period", func(t *testing.T) {
		resp := performRequest(router, http.MethodGet, "/admin/enrollments?status=unofficial", "")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"active_period_id":1`)
		assert.Contains(t, resp.Body.String(), "Ana Cruz")
	})

	t.Run("decide with a terminal verdict", func(t *testing.T) {
		resp := performRequest(router, http.MethodPatch, "/admin/enrollments/5", `{"status":"official"}`)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "Decided.")
	})

	t.Run("decide with a bad verdict is a 400", func(t *testing.T) {
		resp := performRequest(router, http.MethodPatch, "/admin/enrollments/5", `{"status":"dropped"}`)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("activate period", func(t *testing.T) {
		resp := performRequest(router, http.MethodPatch, "/admin/enrollment-periods/1/activate", "")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "Activated.")
	})

	t.Run("admissions split by actionability", func(t *testing.T) {
		resp := performRequest(router, http.MethodGet, "/admin/admissions", "")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"pending"`)
		assert.Contains(t, resp.Body.String(), `"decided"`)
		assert.Contains(t, resp.Body.String(), "Ben Reyes")
	})

	t.Run("approve relays the credential pair", func(t *testing.T) {
		resp := performRequest(router, http.MethodPost, "/admin/admissions/1/approve", "")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "2026-0099")
		assert.Contains(t, resp.Body.String(), "one-time")
	})

	t.Run("reject without a reason is a 400 with no upstream call", func(t *testing.T) {
		before := api.rejectCalls
		resp := performRequest(router, http.MethodPost, "/admin/admissions/1/reject", `{"reason":"   "}`)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, before, api.rejectCalls)
	})

	t.Run("reject with a reason", func(t *testing.T) {
		resp := performRequest(router, http.MethodPost, "/admin/admissions/1/reject", `{"reason":"incomplete requirements"}`)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "Rejected.")
	})

	t.Run("responses are marked no-store", func(t *testing.T) {
		resp := performRequest(router, http.MethodGet, "/admin/admissions", "")
		assert.Equal(t, "no-store", resp.Header().Get("Cache-Control"))
	})
}

func TestAdminRoutesWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAdminHandler(service.NewReviewService(&adminUpstreamMock{}, nil, nil, nil), service.NewAdmissionService(&adminUpstreamMock{}, nil))
	router.GET("/admin/admissions", h.Admissions)

	resp := performRequest(router, http.MethodGet, "/admin/admissions", "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
