package sanitize

// DataType enumerates the record shapes the gateway understands.
type DataType string

const (
	StudentRecord     DataType = "STUDENT_RECORD"
	AttendanceRecord  DataType = "ATTENDANCE_RECORD"
	GradeRecord       DataType = "GRADE_RECORD"
	NotificationData  DataType = "NOTIFICATION"
	AggregateReport   DataType = "AGGREGATE_REPORT"
	ScheduleData      DataType = "SCHEDULE_DATA"
	ComplianceReport  DataType = "COMPLIANCE_REPORT"
)

// Purpose enumerates why a record is being transmitted.
type Purpose string

const (
	ParentNotification Purpose = "PARENT_NOTIFICATION"
	DistrictSync       Purpose = "DISTRICT_SYNC"
	StateReporting     Purpose = "STATE_REPORTING"
	Backup             Purpose = "BACKUP"
	Analytics          Purpose = "ANALYTICS"
	Audit              Purpose = "AUDIT"
)

// Capability is a named permission granted to a device and checked before a
// field category may be emitted.
type Capability string

const (
	CapStudentBasicInfo     Capability = "STUDENT_BASIC_INFO"
	CapStudentContactInfo   Capability = "STUDENT_CONTACT_INFO"
	CapStudentAttendance    Capability = "STUDENT_ATTENDANCE"
	CapAggregateStatistics  Capability = "AGGREGATE_STATISTICS"
)

// Device is the narrow, read-only collaborator interface the gateway
// consumes from the (external) device registry. Modeled as a capability
// interface rather than a class hierarchy.
type Device interface {
	DeviceID() string
	DeviceType() string
	HasPermission(cap Capability) bool
}

// Context is the immutable envelope that
// selects policy for one sanitization call. Build one with NewContext or
// one of the factory constructors below; values are created per call and
// discarded, never mutated after construction.
type Context struct {
	DataType    DataType
	Purpose     Purpose
	StrictMode  bool
	IncludeMeta bool

	additionalFieldsToRemove map[string]struct{}
}

// ContextOption configures a Context at construction time.
type ContextOption func(*Context)

// WithAdditionalFieldsToRemove extends the drop list with extra lowercase
// tokens, on top of the process-wide ALWAYS_REMOVE set.
func WithAdditionalFieldsToRemove(tokens ...string) ContextOption {
	return func(c *Context) {
		for _, t := range tokens {
			c.additionalFieldsToRemove[normalizeToken(t)] = struct{}{}
		}
	}
}

// WithStrictMode overrides the default (true): when true, unknown fields
// inside sensitive records default to drop rather than pass.
func WithStrictMode(strict bool) ContextOption {
	return func(c *Context) { c.StrictMode = strict }
}

// WithPurpose overrides the transmission purpose set by the domain
// sanitizer's default.
func WithPurpose(p Purpose) ContextOption {
	return func(c *Context) { c.Purpose = p }
}

// WithMetadata overrides whether _sanitized/_sanitizedAt/_sanitizationVersion
// are stamped onto the root of the output (default true).
func WithMetadata(include bool) ContextOption {
	return func(c *Context) { c.IncludeMeta = include }
}

// NewContext builds a Context for the given data type and purpose, applying
// any options. strict_mode and include_metadata default to true.
func NewContext(dataType DataType, purpose Purpose, opts ...ContextOption) *Context {
	c := &Context{
		DataType:                 dataType,
		Purpose:                  purpose,
		StrictMode:               true,
		IncludeMeta:              true,
		additionalFieldsToRemove: make(map[string]struct{}),
	}
	for _, opt := range contextDefaultOptions() {
		opt(c)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func normalizeToken(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r = r - 'A' + 'a'
		}
		out = append(out, r)
	}
	return string(out)
}

// The factory constants below cover the common transmission contexts.
// They return fresh Context values (contexts are per-call and
// discarded, never shared mutable state) so callers may safely tweak the
// result with further options before calling a domain sanitizer.

// ParentNotificationContext builds the envelope used when pushing a
// notification out to a parent-facing device.
func ParentNotificationContext(dataType DataType, opts ...ContextOption) *Context {
	return NewContext(dataType, ParentNotification, opts...)
}

// DistrictSyncContext builds the envelope used when syncing records to a
// district system of record.
func DistrictSyncContext(dataType DataType, opts ...ContextOption) *Context {
	return NewContext(dataType, DistrictSync, opts...)
}

// StateReportingContext builds the envelope used when submitting compliance
// data to a state reporting system.
func StateReportingContext(dataType DataType, opts ...ContextOption) *Context {
	return NewContext(dataType, StateReporting, opts...)
}

// BackupContext builds the envelope used for cold-storage backup exports.
func BackupContext(dataType DataType, opts ...ContextOption) *Context {
	return NewContext(dataType, Backup, opts...)
}

// AnalyticsContext builds the envelope used for internal analytics feeds.
func AnalyticsContext(dataType DataType, opts ...ContextOption) *Context {
	return NewContext(dataType, Analytics, opts...)
}

// AuditContext builds the envelope used for compliance/audit trails.
func AuditContext(dataType DataType, opts ...ContextOption) *Context {
	return NewContext(dataType, Audit, opts...)
}
