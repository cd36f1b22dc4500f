package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/primex-howard/tclass-gateway/internal/service"
	appErrors "github.com/primex-howard/tclass-gateway/pkg/errors"
	"github.com/primex-howard/tclass-gateway/pkg/response"
)

// AdminHandler exposes the enrollment review and admission review queues.
type AdminHandler struct {
	review     *service.ReviewService
	admissions *service.AdmissionService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(review *service.ReviewService, admissions *service.AdmissionService) *AdminHandler {
	return &AdminHandler{review: review, admissions: admissions}
}

// Enrollments godoc
// @Summary Enrollment review queue
// @Tags Admin
// @Produce json
// @Param status query string false "Status filter"
// @Param period_id query int false "Period filter"
// @Success 200 {object} response.Envelope
// @Router /admin/enrollments [get]
func (h *AdminHandler) Enrollments(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	queue, err := h.review.Queue(c.Request.Context(), session, service.ReviewFilter{
		Status:   c.Query("status"),
		PeriodID: c.Query("period_id"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, queue)
}

// DecideEnrollment godoc
// @Summary Decide an assessed enrollment line
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Enrollment ID"
// @Param payload body service.DecideEnrollmentRequest true "Verdict"
// @Success 200 {object} response.Envelope
// @Router /admin/enrollments/{id} [patch]
func (h *AdminHandler) DecideEnrollment(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.DecideEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	message, err := h.review.Decide(c.Request.Context(), session, id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": message})
}

// ActivatePeriod godoc
// @Summary Activate an enrollment period
// @Tags Admin
// @Produce json
// @Param id path int true "Period ID"
// @Success 200 {object} response.Envelope
// @Router /admin/enrollment-periods/{id}/activate [patch]
func (h *AdminHandler) ActivatePeriod(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	message, err := h.review.ActivatePeriod(c.Request.Context(), session, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": message})
}

// Admissions godoc
// @Summary Admission review queue
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/admissions [get]
func (h *AdminHandler) Admissions(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	queue, err := h.admissions.Queue(c.Request.Context(), session)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, queue)
}

// ApproveAdmission godoc
// @Summary Approve an admission application
// @Tags Admin
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Envelope
// @Router /admin/admissions/{id}/approve [post]
func (h *AdminHandler) ApproveAdmission(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	decision, err := h.admissions.Approve(c.Request.Context(), session, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, decision)
}

// rejectAdmissionRequest carries the rejection reason.
type rejectAdmissionRequest struct {
	Reason string `json:"reason"`
}

// RejectAdmission godoc
// @Summary Reject an admission application
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param payload body rejectAdmissionRequest true "Reason"
// @Success 200 {object} response.Envelope
// @Router /admin/admissions/{id}/reject [post]
func (h *AdminHandler) RejectAdmission(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req rejectAdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	message, err := h.admissions.Reject(c.Request.Context(), session, id, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": message})
}
