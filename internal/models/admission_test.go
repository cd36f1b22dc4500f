package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestAdmissionStatusActionable(t *testing.T) {
	assert.True(t, AdmissionStatusPending.Actionable())
	assert.False(t, AdmissionStatusApproved.Actionable())
	assert.False(t, AdmissionStatusRejected.Actionable())
}

func TestMissingAttachments(t *testing.T) {
	complete := AdmissionApplication{
		IDPicturePath:       strptr("/files/id.jpg"),
		OneByOnePicturePath: strptr("/files/1x1.jpg"),
		RightThumbmarkPath:  strptr("/files/thumb.jpg"),
	}

	t.Run("regular application with all slots filled", func(t *testing.T) {
		assert.Empty(t, complete.MissingAttachments())
	})

	t.Run("regular application missing slots", func(t *testing.T) {
		app := AdmissionApplication{IDPicturePath: strptr("/files/id.jpg")}
		assert.Equal(t, []string{"one_by_one_picture", "right_thumbmark"}, app.MissingAttachments())
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		app := complete
		app.RightThumbmarkPath = strptr("")
		assert.Equal(t, []string{"right_thumbmark"}, app.MissingAttachments())
	})

	t.Run("vocational requires valid id and birth certificate", func(t *testing.T) {
		app := complete
		app.ApplicationType = ApplicationTypeVocational
		assert.Equal(t, []string{"valid_id", "birth_certificate"}, app.MissingAttachments())

		app.ValidIDType = strptr("passport")
		app.ValidIDPath = strptr("/files/passport.jpg")
		app.BirthCertificatePath = strptr("/files/birth.jpg")
		assert.Empty(t, app.MissingAttachments())
	})

	t.Run("vocational valid id needs both type and file", func(t *testing.T) {
		app := complete
		app.ApplicationType = ApplicationTypeVocational
		app.ValidIDPath = strptr("/files/passport.jpg")
		app.BirthCertificatePath = strptr("/files/birth.jpg")
		assert.Equal(t, []string{"valid_id"}, app.MissingAttachments())
	})
}
