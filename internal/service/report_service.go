package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/primex-howard/tclass-gateway/internal/auth"
	"github.com/primex-howard/tclass-gateway/internal/dto"
	"github.com/primex-howard/tclass-gateway/internal/models"
	"github.com/primex-howard/tclass-gateway/internal/upstream"
	appErrors "github.com/primex-howard/tclass-gateway/pkg/errors"
	"github.com/primex-howard/tclass-gateway/pkg/export"
)

type reportAPI interface {
	CurriculumEvaluation(ctx context.Context, token string) (*upstream.CurriculumEvaluation, error)
	EnrolledSubjects(ctx context.Context, token string, periodID int) (*upstream.EnrolledSubjectsResult, error)
	StudentPeriods(ctx context.Context, token string) (*upstream.PeriodList, error)
}

// ReportService builds the student-facing reports and document exports.
type ReportService struct {
	api    reportAPI
	logger *zap.Logger
}

// NewReportService constructs ReportService.
func NewReportService(api reportAPI, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{api: api, logger: logger}
}

// CurriculumEvaluation fetches the student's curriculum progress rows.
func (s *ReportService) CurriculumEvaluation(ctx context.Context, session auth.Session) (*dto.Evaluation, error) {
	res, err := s.api.CurriculumEvaluation(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	return &dto.Evaluation{Evaluation: res.Evaluation}, nil
}

// EnrolledReport fetches the enrolled subjects of one period along with the
// derived overall status and unit total.
func (s *ReportService) EnrolledReport(ctx context.Context, session auth.Session, periodID int) (*dto.EnrolledReport, error) {
	if periodID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "period_id is required")
	}
	res, err := s.api.EnrolledSubjects(ctx, session.Token, periodID)
	if err != nil {
		return nil, err
	}

	status := res.EnrollmentStatus
	if status == "" {
		status = models.DeriveOverallStatus(res.EnrolledSubjects)
	}
	total := res.TotalUnits
	if total == 0 {
		total = models.TotalOfficialUnits(res.EnrolledSubjects)
	}

	return &dto.EnrolledReport{
		PeriodID:         periodID,
		EnrolledSubjects: res.EnrolledSubjects,
		EnrollmentStatus: status,
		TotalUnits:       total,
	}, nil
}

// SubjectListCSV exports the period's enrolled subjects as a CSV download.
// Any enrolled line qualifies; official status is not required here.
func (s *ReportService) SubjectListCSV(ctx context.Context, session auth.Session, periodID int) ([]byte, string, error) {
	report, err := s.EnrolledReport(ctx, session, periodID)
	if err != nil {
		return nil, "", err
	}
	periodName, err := s.periodName(ctx, session.Token, periodID)
	if err != nil {
		return nil, "", err
	}

	doc := export.Document{
		Title: "Enrolled Subjects",
		Lines: []string{
			"Period: " + periodName,
			"Status: " + string(report.EnrollmentStatus),
			"Total Units: " + formatUnits(report.TotalUnits),
		},
		Headers: []string{"Code", "Title", "Units", "Schedule", "Room", "Instructor", "Section"},
		Rows:    subjectRows(report.EnrolledSubjects),
	}
	data, err := export.CSV(doc)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render subject list")
	}
	return data, fmt.Sprintf("subjects-period-%d.csv", periodID), nil
}

// CORPDF exports the certificate of registration for one period. The
// document exists only once the enrollment is official.
func (s *ReportService) CORPDF(ctx context.Context, session auth.Session, periodID int) ([]byte, string, error) {
	report, err := s.EnrolledReport(ctx, session, periodID)
	if err != nil {
		return nil, "", err
	}
	if report.EnrollmentStatus != models.OverallOfficial {
		return nil, "", appErrors.ErrNotOfficial
	}
	periodName, err := s.periodName(ctx, session.Token, periodID)
	if err != nil {
		return nil, "", err
	}

	doc := export.Document{
		Title: "Certificate of Registration",
		Lines: []string{
			"Period: " + periodName,
			"Enrollment Status: OFFICIAL",
			"Total Units: " + formatUnits(report.TotalUnits),
		},
		Headers: []string{"Code", "Title", "Units", "Schedule", "Room", "Instructor", "Section"},
		Rows:    subjectRows(report.EnrolledSubjects),
	}
	data, err := export.PDF(doc)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render certificate of registration")
	}
	s.logger.Info("certificate of registration exported", zap.Int("period_id", periodID))
	return data, fmt.Sprintf("cor-period-%d.pdf", periodID), nil
}

func (s *ReportService) periodName(ctx context.Context, token string, periodID int) (string, error) {
	periods, err := s.api.StudentPeriods(ctx, token)
	if err != nil {
		return "", err
	}
	for _, period := range periods.Periods {
		if period.ID == periodID {
			return period.Name, nil
		}
	}
	return strconv.Itoa(periodID), nil
}

func subjectRows(lines []models.EnrolledSubject) [][]string {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []string{
			line.Code,
			line.Title,
			formatUnits(line.Units),
			deref(line.Schedule),
			deref(line.Room),
			deref(line.Instructor),
			deref(line.Section),
		})
	}
	return rows
}

func formatUnits(units float64) string {
	return strconv.FormatFloat(units, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
