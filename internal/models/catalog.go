package models

// Period is an enrollment period. The upstream enforces that exactly one
// period is active system-wide; the gateway only displays and activates.
type Period struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive int    `json:"is_active"`
}

// Active reports whether the period is the current one. The upstream
// serializes the flag as 0/1.
func (p Period) Active() bool {
	return p.IsActive != 0
}

// Course is a read-only catalog entity.
type Course struct {
	ID          int     `json:"id"`
	Code        string  `json:"code"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Units       float64 `json:"units"`
	TF          float64 `json:"tf"`
	Lec         float64 `json:"lec"`
	Lab         float64 `json:"lab"`
	Schedule    *string `json:"schedule"`
	Section     *string `json:"section"`
	Room        *string `json:"room"`
	Instructor  *string `json:"instructor"`
}

// CurriculumEntry is one row of the curriculum evaluation report.
type CurriculumEntry struct {
	ID           int      `json:"id"`
	Code         string   `json:"code"`
	Title        string   `json:"title"`
	Units        float64  `json:"units"`
	YearLevel    int      `json:"year_level"`
	Semester     int      `json:"semester"`
	Grade        *float64 `json:"grade"`
	ResultStatus *string  `json:"result_status"`
}
