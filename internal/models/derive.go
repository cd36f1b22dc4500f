package models

// Derived read-side values. These are pure so the enrollment rules stay
// testable independent of any rendering or transport.

// TotalPendingUnits sums units across all pre-enlisted lines of a period.
func TotalPendingUnits(lines []PreEnlistedSubject) float64 {
	var total float64
	for _, line := range lines {
		total += line.Units
	}
	return total
}

// TotalOfficialUnits sums units across the enrolled lines of a period.
func TotalOfficialUnits(lines []EnrolledSubject) float64 {
	var total float64
	for _, line := range lines {
		total += line.Units
	}
	return total
}

// DeriveOverallStatus collapses a period's enrolled lines into the single
// badge shown on the worksheet: official wins over unofficial, and an empty
// set means not enrolled.
func DeriveOverallStatus(lines []EnrolledSubject) OverallStatus {
	status := OverallNotEnrolled
	for _, line := range lines {
		switch EnrollmentStatus(line.Status) {
		case EnrollmentStatusOfficial:
			return OverallOfficial
		case EnrollmentStatusUnofficial:
			status = OverallUnofficial
		}
	}
	return status
}

// AvailableCourses filters the catalog down to courses the student may
// still add: pre-enlisted lines in the draft/pending band and officially
// enrolled lines exclude their course, while rejected and dropped lines
// release it for re-adding.
func AvailableCourses(catalog []Course, preEnlisted []PreEnlistedSubject, enrolled []EnrolledSubject) []Course {
	taken := make(map[int]struct{}, len(preEnlisted)+len(enrolled))
	for _, line := range preEnlisted {
		if line.Status.BlocksReAdd() {
			taken[line.CourseID] = struct{}{}
		}
	}
	for _, line := range enrolled {
		taken[line.CourseID] = struct{}{}
	}

	available := make([]Course, 0, len(catalog))
	for _, course := range catalog {
		if _, ok := taken[course.ID]; !ok {
			available = append(available, course)
		}
	}
	return available
}
