package sanitize

import "strings"

// SanitizeAttendance is the attendance-record domain entry point:
// sanitize_attendance(attendance_map, device) -> map.
//
// Requires STUDENT_ATTENDANCE; without it the output is empty. Times,
// locations, class periods, and teacher names are never read from the
// input, so they cannot leak through regardless of permission state.
func SanitizeAttendance(record *Mapping, device Device, opts ...ContextOption) *Mapping {
	ctx := NewContext(AttendanceRecord, DistrictSync, opts...)

	if !device.HasPermission(CapStudentAttendance) {
		logPermissionDenied(AttendanceRecord, CapStudentAttendance, device.DeviceID())
		return NewMapping()
	}

	out := NewMapping()
	studentID := stringField(record, "studentId", "student_id")
	out.SetScalar("student_ref", DerivePseudonym(studentID, device.DeviceID()))

	if date := stringField(record, "date", "attendanceDate", "attendance_date"); date != "" {
		out.SetScalar("date", toDateOnly(date))
	}
	if status, ok := scalarField(record, "status"); ok {
		out.Set("status", status)
	}

	if ctx.IncludeMeta {
		stampMetadata(out)
	}
	return out
}

// toDateOnly strips a time-of-day component from an ISO-8601 date-time,
// leaving a bare date. Inputs already date-only pass through unchanged.
func toDateOnly(s string) string {
	if i := strings.IndexAny(s, "T "); i >= 0 {
		return s[:i]
	}
	return s
}
