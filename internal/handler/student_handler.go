package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/primex-howard/tclass-gateway/internal/service"
	appErrors "github.com/primex-howard/tclass-gateway/pkg/errors"
	"github.com/primex-howard/tclass-gateway/pkg/response"
)

// StudentHandler exposes the student enrollment worksheet and reports.
type StudentHandler struct {
	enrollment *service.EnrollmentService
	reports    *service.ReportService
}

// NewStudentHandler constructs handler.
func NewStudentHandler(enrollment *service.EnrollmentService, reports *service.ReportService) *StudentHandler {
	return &StudentHandler{enrollment: enrollment, reports: reports}
}

// Worksheet godoc
// @Summary Enrollment worksheet base data
// @Tags Student
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /student/enrollment [get]
func (h *StudentHandler) Worksheet(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	worksheet, err := h.enrollment.Worksheet(c.Request.Context(), session)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, worksheet)
}

// PeriodData godoc
// @Summary Per-period worksheet data
// @Tags Student
// @Produce json
// @Param id path int true "Period ID"
// @Success 200 {object} response.Envelope
// @Router /student/enrollment/periods/{id} [get]
func (h *StudentHandler) PeriodData(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	periodID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	data, err := h.enrollment.PeriodData(c.Request.Context(), session, periodID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, data)
}

// AddCourse godoc
// @Summary Pre-enlist a course
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body service.AddCourseRequest true "Course and period"
// @Success 200 {object} response.Envelope
// @Router /student/enrollment/add [post]
func (h *StudentHandler) AddCourse(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req service.AddCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	message, err := h.enrollment.AddCourse(c.Request.Context(), session, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": message})
}

// AutoPreEnlist godoc
// @Summary Auto pre-enlist a period
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body service.PeriodActionRequest true "Period"
// @Success 200 {object} response.Envelope
// @Router /student/enrollment/auto [post]
func (h *StudentHandler) AutoPreEnlist(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req service.PeriodActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	message, err := h.enrollment.AutoPreEnlist(c.Request.Context(), session, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": message})
}

// DeleteLine godoc
// @Summary Delete one pre-enlisted line
// @Tags Student
// @Produce json
// @Param id path int true "Pre-enlisted line ID"
// @Success 200 {object} response.Envelope
// @Router /student/enrollment/pre-enlisted/{id} [delete]
func (h *StudentHandler) DeleteLine(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	message, err := h.enrollment.DeleteLine(c.Request.Context(), session, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": message})
}

// ClearPeriod godoc
// @Summary Clear the draft lines of one period
// @Tags Student
// @Produce json
// @Param period_id query int true "Period ID"
// @Success 200 {object} response.Envelope
// @Router /student/enrollment/pre-enlisted [delete]
func (h *StudentHandler) ClearPeriod(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	periodID, err := queryID(c, "period_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	message, err := h.enrollment.ClearPeriod(c.Request.Context(), session, periodID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": message})
}

// Assess godoc
// @Summary Submit the pre-enlisted batch for review
// @Tags Student
// @Accept json
// @Produce json
// @Param payload body service.PeriodActionRequest true "Period"
// @Success 200 {object} response.Envelope
// @Router /student/enrollment/assess [post]
func (h *StudentHandler) Assess(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req service.PeriodActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	message, err := h.enrollment.Assess(c.Request.Context(), session, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": message})
}

// CurriculumEvaluation godoc
// @Summary Curriculum evaluation report
// @Tags Student
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /student/curriculum-evaluation [get]
func (h *StudentHandler) CurriculumEvaluation(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	evaluation, err := h.reports.CurriculumEvaluation(c.Request.Context(), session)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, evaluation)
}

// EnrolledReport godoc
// @Summary Enrolled subjects report for a period
// @Tags Student
// @Produce json
// @Param period_id query int true "Period ID"
// @Success 200 {object} response.Envelope
// @Router /student/reports/enrolled [get]
func (h *StudentHandler) EnrolledReport(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	periodID, err := queryID(c, "period_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	report, err := h.reports.EnrolledReport(c.Request.Context(), session, periodID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// SubjectListCSV godoc
// @Summary Download the enrolled subject list as CSV
// @Tags Student
// @Produce text/csv
// @Param period_id query int true "Period ID"
// @Success 200 {file} file
// @Router /student/reports/subjects.csv [get]
func (h *StudentHandler) SubjectListCSV(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	periodID, err := queryID(c, "period_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	data, filename, err := h.reports.SubjectListCSV(c.Request.Context(), session, periodID)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, data, filename, "text/csv")
}

// CORPDF godoc
// @Summary Download the certificate of registration as PDF
// @Tags Student
// @Produce application/pdf
// @Param period_id query int true "Period ID"
// @Success 200 {file} file
// @Router /student/reports/cor.pdf [get]
func (h *StudentHandler) CORPDF(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	periodID, err := queryID(c, "period_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	data, filename, err := h.reports.CORPDF(c.Request.Context(), session, periodID)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveFile(c, data, filename, "application/pdf")
}

func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, name+" must be a positive integer")
	}
	return id, nil
}

func queryID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Query(name))
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, name+" must be a positive integer")
	}
	return id, nil
}

func serveFile(c *gin.Context, data []byte, filename, mimeType string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, mimeType, data)
}
