package models

// AdmissionStatus is the lifecycle of an admission application. Both
// outcomes are terminal.
type AdmissionStatus string

const (
	AdmissionStatusPending  AdmissionStatus = "pending"
	AdmissionStatusApproved AdmissionStatus = "approved"
	AdmissionStatusRejected AdmissionStatus = "rejected"
)

// Actionable reports whether the application may still be decided.
func (s AdmissionStatus) Actionable() bool {
	return s == AdmissionStatusPending
}

// ApplicationType distinguishes the two admission subtypes.
type ApplicationType string

const (
	ApplicationTypeAdmission  ApplicationType = "admission"
	ApplicationTypeVocational ApplicationType = "vocational"
)

// AdmissionApplication is a first-time enrollment request under review.
type AdmissionApplication struct {
	ID                   int             `json:"id"`
	FullName             string          `json:"full_name"`
	Age                  int             `json:"age"`
	Gender               string          `json:"gender"`
	PrimaryCourse        string          `json:"primary_course"`
	SecondaryCourse      *string         `json:"secondary_course"`
	Email                string          `json:"email"`
	ApplicationType      ApplicationType `json:"application_type,omitempty"`
	ValidIDType          *string         `json:"valid_id_type,omitempty"`
	Status               AdmissionStatus `json:"status"`
	CreatedUserID        *int            `json:"created_user_id"`
	Remarks              *string         `json:"remarks,omitempty"`
	IDPicturePath        *string         `json:"id_picture_path,omitempty"`
	OneByOnePicturePath  *string         `json:"one_by_one_picture_path,omitempty"`
	RightThumbmarkPath   *string         `json:"right_thumbmark_path,omitempty"`
	BirthCertificatePath *string         `json:"birth_certificate_path,omitempty"`
	ValidIDPath          *string         `json:"valid_id_path,omitempty"`
}

// MissingAttachments lists attachment slots the application has not filled.
// Vocational applications additionally require a valid-ID type and a birth
// certificate reference.
func (a AdmissionApplication) MissingAttachments() []string {
	var missing []string
	if empty(a.IDPicturePath) {
		missing = append(missing, "id_picture")
	}
	if empty(a.OneByOnePicturePath) {
		missing = append(missing, "one_by_one_picture")
	}
	if empty(a.RightThumbmarkPath) {
		missing = append(missing, "right_thumbmark")
	}
	if a.ApplicationType == ApplicationTypeVocational {
		if empty(a.ValidIDType) || empty(a.ValidIDPath) {
			missing = append(missing, "valid_id")
		}
		if empty(a.BirthCertificatePath) {
			missing = append(missing, "birth_certificate")
		}
	}
	return missing
}

func empty(s *string) bool {
	return s == nil || *s == ""
}

// CredentialsPreview is the one-time credential pair returned on approval.
// It is relayed to the current view only and never stored or logged.
type CredentialsPreview struct {
	StudentNumber     string `json:"student_number"`
	TemporaryPassword string `json:"temporary_password"`
}
