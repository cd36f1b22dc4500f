package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primex-howard/tclass-gateway/internal/models"
	"github.com/primex-howard/tclass-gateway/internal/upstream"
	appErrors "github.com/primex-howard/tclass-gateway/pkg/errors"
)

type reportAPIMock struct {
	evaluation *upstream.CurriculumEvaluation
	enrolled   *upstream.EnrolledSubjectsResult
	periods    *upstream.PeriodList
	err        error
}

func (m *reportAPIMock) CurriculumEvaluation(context.Context, string) (*upstream.CurriculumEvaluation, error) {
	return m.evaluation, m.err
}

func (m *reportAPIMock) EnrolledSubjects(context.Context, string, int) (*upstream.EnrolledSubjectsResult, error) {
	return m.enrolled, m.err
}

func (m *reportAPIMock) StudentPeriods(context.Context, string) (*upstream.PeriodList, error) {
	return m.periods, m.err
}

func officialEnrolled() *upstream.EnrolledSubjectsResult {
	return &upstream.EnrolledSubjectsResult{
		EnrolledSubjects: []models.EnrolledSubject{
			{CourseID: 1, Code: "CS101", Title: "Intro", Units: 3, Status: string(models.EnrollmentStatusOfficial)},
			{CourseID: 2, Code: "CS102", Title: "Data", Units: 3, Status: string(models.EnrollmentStatusOfficial)},
		},
		Official: true,
	}
}

func semPeriods() *upstream.PeriodList {
	return &upstream.PeriodList{Periods: []models.Period{{ID: 7, Name: "1st Sem 2026"}}}
}

func TestReportServiceCurriculumEvaluation(t *testing.T) {
	api := &reportAPIMock{evaluation: &upstream.CurriculumEvaluation{
		Evaluation: []models.CurriculumEntry{{ID: 1, Code: "CS101"}},
	}}
	svc := NewReportService(api, nil)

	evaluation, err := svc.CurriculumEvaluation(context.Background(), testSession)
	require.NoError(t, err)
	assert.Len(t, evaluation.Evaluation, 1)
}

func TestReportServiceEnrolledReport(t *testing.T) {
	t.Run("derives status and total when the upstream omits them", func(t *testing.T) {
		api := &reportAPIMock{enrolled: officialEnrolled()}
		svc := NewReportService(api, nil)

		report, err := svc.EnrolledReport(context.Background(), testSession, 7)
		require.NoError(t, err)
		assert.Equal(t, models.OverallOfficial, report.EnrollmentStatus)
		assert.Equal(t, 6.0, report.TotalUnits)
	})

	t.Run("invalid period refused", func(t *testing.T) {
		svc := NewReportService(&reportAPIMock{}, nil)
		_, err := svc.EnrolledReport(context.Background(), testSession, 0)
		require.Error(t, err)
	})
}

func TestReportServiceSubjectListCSV(t *testing.T) {
	api := &reportAPIMock{enrolled: officialEnrolled(), periods: semPeriods()}
	svc := NewReportService(api, nil)

	data, filename, err := svc.SubjectListCSV(context.Background(), testSession, 7)
	require.NoError(t, err)
	assert.Equal(t, "subjects-period-7.csv", filename)

	content := string(data)
	assert.True(t, strings.Contains(content, "Period: 1st Sem 2026"))
	assert.True(t, strings.Contains(content, "CS101"))
	assert.True(t, strings.Contains(content, "Total Units: 6"))
}

func TestReportServiceCORPDF(t *testing.T) {
	t.Run("renders for official enrollment", func(t *testing.T) {
		api := &reportAPIMock{enrolled: officialEnrolled(), periods: semPeriods()}
		svc := NewReportService(api, nil)

		data, filename, err := svc.CORPDF(context.Background(), testSession, 7)
		require.NoError(t, err)
		assert.Equal(t, "cor-period-7.pdf", filename)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})

	t.Run("refused while enrollment is unofficial", func(t *testing.T) {
		api := &reportAPIMock{enrolled: &upstream.EnrolledSubjectsResult{
			EnrolledSubjects: []models.EnrolledSubject{
				{CourseID: 1, Units: 3, Status: string(models.EnrollmentStatusUnofficial)},
			},
		}}
		svc := NewReportService(api, nil)

		_, _, err := svc.CORPDF(context.Background(), testSession, 7)
		require.Error(t, err)

		var appErr *appErrors.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrNotOfficial.Code, appErr.Code)
	})

	t.Run("refused with no enrollment at all", func(t *testing.T) {
		api := &reportAPIMock{enrolled: &upstream.EnrolledSubjectsResult{}}
		svc := NewReportService(api, nil)

		_, _, err := svc.CORPDF(context.Background(), testSession, 7)
		require.Error(t, err)
	})
}
