package sanitize

import "testing"

func newAttendanceRecord() *Mapping {
	m := NewMapping()
	m.SetScalar("studentId", "S100")
	m.SetScalar("date", "2024-09-03T08:15:00")
	m.SetScalar("status", "present")
	m.SetScalar("classPeriod", "3rd period")
	m.SetScalar("teacherName", "Mr. Lopez")
	return m
}

func TestSanitizeAttendanceWithPermission(t *testing.T) {
	device := NewStaticDevice("d1", "district-sync", CapStudentAttendance)
	out := SanitizeAttendance(newAttendanceRecord(), device)

	if _, ok := out.Get("student_ref"); !ok {
		t.Error("expected student_ref in output")
	}
	date, ok := out.Get("date")
	if !ok || date.Scalar != "2024-09-03" {
		t.Errorf("expected date truncated to 2024-09-03, got %v", date.Scalar)
	}
	status, ok := out.Get("status")
	if !ok || status.Scalar != "present" {
		t.Errorf("expected status = present, got %v", status.Scalar)
	}
	if _, ok := out.Get("classPeriod"); ok {
		t.Error("classPeriod must never appear in output")
	}
	if _, ok := out.Get("teacherName"); ok {
		t.Error("teacherName must never appear in output")
	}
}

func TestSanitizeAttendanceWithoutPermission(t *testing.T) {
	device := NewStaticDevice("d1", "district-sync")
	out := SanitizeAttendance(newAttendanceRecord(), device)

	if out.Len() != 0 {
		t.Errorf("expected empty output without STUDENT_ATTENDANCE, got keys %v", out.Keys())
	}
}

func TestToDateOnly(t *testing.T) {
	tests := []struct{ in, want string }{
		{"2024-09-03T08:15:00", "2024-09-03"},
		{"2024-09-03 08:15:00", "2024-09-03"},
		{"2024-09-03", "2024-09-03"},
	}
	for _, tt := range tests {
		if got := toDateOnly(tt.in); got != tt.want {
			t.Errorf("toDateOnly(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
