package sanitize

// SanitizeStudents sanitizes multiple student records in one call,
// bulk-processing helper for callers syncing many records in one pass.
func SanitizeStudents(records []*Mapping, device Device, opts ...ContextOption) []*Mapping {
	out := make([]*Mapping, len(records))
	for i, r := range records {
		out[i] = SanitizeStudent(r, device, opts...)
	}
	return out
}

// SanitizeAttendanceRecords sanitizes multiple attendance records in one
// call.
func SanitizeAttendanceRecords(records []*Mapping, device Device, opts ...ContextOption) []*Mapping {
	out := make([]*Mapping, len(records))
	for i, r := range records {
		out[i] = SanitizeAttendance(r, device, opts...)
	}
	return out
}

// SanitizeAggregates sanitizes multiple aggregate reports in one call.
func SanitizeAggregates(records []*Mapping, device Device, opts ...ContextOption) []*Mapping {
	out := make([]*Mapping, len(records))
	for i, r := range records {
		out[i] = SanitizeAggregate(r, device, opts...)
	}
	return out
}
