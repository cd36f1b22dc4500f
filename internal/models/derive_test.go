package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPendingUnits(t *testing.T) {
	lines := []PreEnlistedSubject{
		{CourseID: 1, Units: 3},
		{CourseID: 2, Units: 3},
		{CourseID: 3, Units: 1},
	}
	assert.Equal(t, 7.0, TotalPendingUnits(lines))

	remaining := []PreEnlistedSubject{lines[0], lines[2]}
	assert.Equal(t, 4.0, TotalPendingUnits(remaining), "dropping a line drops its units")
	assert.Equal(t, 0.0, TotalPendingUnits(nil))
}

func TestTotalOfficialUnits(t *testing.T) {
	lines := []EnrolledSubject{
		{CourseID: 1, Units: 3},
		{CourseID: 2, Units: 1.5},
	}
	assert.Equal(t, 4.5, TotalOfficialUnits(lines))
	assert.Equal(t, 0.0, TotalOfficialUnits(nil))
}

func TestDeriveOverallStatus(t *testing.T) {
	t.Run("empty set means not enrolled", func(t *testing.T) {
		assert.Equal(t, OverallNotEnrolled, DeriveOverallStatus(nil))
	})

	t.Run("unofficial lines only", func(t *testing.T) {
		lines := []EnrolledSubject{
			{Status: string(EnrollmentStatusUnofficial)},
			{Status: string(EnrollmentStatusUnofficial)},
		}
		assert.Equal(t, OverallUnofficial, DeriveOverallStatus(lines))
	})

	t.Run("one official line wins", func(t *testing.T) {
		lines := []EnrolledSubject{
			{Status: string(EnrollmentStatusUnofficial)},
			{Status: string(EnrollmentStatusOfficial)},
		}
		assert.Equal(t, OverallOfficial, DeriveOverallStatus(lines))
	})

	t.Run("unrecognized statuses are ignored", func(t *testing.T) {
		lines := []EnrolledSubject{{Status: "archived"}}
		assert.Equal(t, OverallNotEnrolled, DeriveOverallStatus(lines))
	})
}

func TestPreEnlistStatusBlocksReAdd(t *testing.T) {
	assert.True(t, PreEnlistStatusDraft.BlocksReAdd())
	assert.True(t, PreEnlistStatusPending.BlocksReAdd())
	assert.True(t, PreEnlistStatusApproved.BlocksReAdd())
	assert.False(t, PreEnlistStatusRejected.BlocksReAdd())
	assert.False(t, PreEnlistStatusDropped.BlocksReAdd())
}

func TestAvailableCourses(t *testing.T) {
	catalog := []Course{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	t.Run("draft and enrolled lines exclude their course", func(t *testing.T) {
		pre := []PreEnlistedSubject{{CourseID: 1, Status: PreEnlistStatusDraft}}
		enrolled := []EnrolledSubject{{CourseID: 2}}
		available := AvailableCourses(catalog, pre, enrolled)
		require.Len(t, available, 2)
		assert.Equal(t, 3, available[0].ID)
		assert.Equal(t, 4, available[1].ID)
	})

	t.Run("rejected and dropped lines release the course", func(t *testing.T) {
		pre := []PreEnlistedSubject{
			{CourseID: 1, Status: PreEnlistStatusRejected},
			{CourseID: 2, Status: PreEnlistStatusDropped},
		}
		available := AvailableCourses(catalog, pre, nil)
		assert.Len(t, available, 4)
	})

	t.Run("empty lines leave the catalog intact", func(t *testing.T) {
		available := AvailableCourses(catalog, nil, nil)
		assert.Equal(t, catalog, available)
	})
}

func TestEnrollmentStatusTransitions(t *testing.T) {
	assert.True(t, EnrollmentStatusOfficial.IsTerminal())
	assert.True(t, EnrollmentStatusRejected.IsTerminal())
	assert.True(t, EnrollmentStatusDropped.IsTerminal())
	assert.False(t, EnrollmentStatusUnofficial.IsTerminal())
	assert.False(t, EnrollmentStatusDraft.IsTerminal())

	assert.True(t, EnrollmentStatusUnofficial.Decidable())
	assert.False(t, EnrollmentStatusOfficial.Decidable())
	assert.False(t, EnrollmentStatusDraft.Decidable())

	assert.True(t, ValidDecision(EnrollmentStatusOfficial))
	assert.True(t, ValidDecision(EnrollmentStatusRejected))
	assert.False(t, ValidDecision(EnrollmentStatusUnofficial))
	assert.False(t, ValidDecision(EnrollmentStatusDropped))
}
