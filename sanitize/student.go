package sanitize

import "strings"

// SanitizeStudent is the student-record domain entry point:
// sanitize_student(student_map, device) -> map.
//
// The output always contains reference_id. student_name/grade_level are
// only emitted with STUDENT_BASIC_INFO; contact_email/contact_phone only
// with STUDENT_CONTACT_INFO. SSN, full address, birth date, and medical
// fields are never emitted, irrespective of permissions — this function
// never reads those input fields at all, so there is no accidental path
// for them to leak through.
func SanitizeStudent(record *Mapping, device Device, opts ...ContextOption) *Mapping {
	ctx := NewContext(StudentRecord, ParentNotification, opts...)
	out := NewMapping()

	studentID := stringField(record, "studentId", "student_id")
	out.SetScalar("reference_id", DerivePseudonym(studentID, device.DeviceID()))

	if device.HasPermission(CapStudentBasicInfo) {
		firstName := stringField(record, "firstName", "first_name")
		lastName := stringField(record, "lastName", "last_name")
		out.SetScalar("student_name", formatStudentName(firstName, lastName))

		if grade, ok := scalarField(record, "gradeLevel", "grade_level"); ok {
			out.Set("grade_level", grade)
		}
	} else {
		logPermissionDenied(StudentRecord, CapStudentBasicInfo, device.DeviceID())
	}

	if device.HasPermission(CapStudentContactInfo) {
		if email := stringField(record, "parentEmail", "parent_email"); email != "" {
			out.SetScalar("contact_email", maskEmail(email))
		}
		if phone := stringField(record, "parentPhone", "parent_phone"); phone != "" {
			out.SetScalar("contact_phone", maskPhone(phone))
		}
	} else {
		logPermissionDenied(StudentRecord, CapStudentContactInfo, device.DeviceID())
	}

	if ctx.IncludeMeta {
		stampMetadata(out)
	}
	return out
}

// formatStudentName renders "<first initial>. <last name>", omitting empty
// parts.
func formatStudentName(first, last string) string {
	var parts []string
	if first != "" {
		parts = append(parts, strings.ToUpper(first[:1])+".")
	}
	if last != "" {
		parts = append(parts, last)
	}
	return strings.Join(parts, " ")
}

// stringField looks up the first present key among names and returns its
// scalar value coerced to a string, or "" if absent/not a string.
func stringField(m *Mapping, names ...string) string {
	for _, name := range names {
		if v, ok := m.Get(name); ok && v.Kind == KindScalar {
			if s, ok := v.Scalar.(string); ok {
				return s
			}
		}
	}
	return ""
}

// scalarField looks up the first present key among names and returns its
// raw Value unchanged.
func scalarField(m *Mapping, names ...string) (Value, bool) {
	for _, name := range names {
		if v, ok := m.Get(name); ok {
			return v, true
		}
	}
	return Value{}, false
}
