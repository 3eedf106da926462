package sanitize

import "testing"

func TestNewContextDefaults(t *testing.T) {
	ctx := NewContext(StudentRecord, ParentNotification)
	if !ctx.StrictMode {
		t.Error("expected StrictMode to default true")
	}
	if !ctx.IncludeMeta {
		t.Error("expected IncludeMeta to default true")
	}
	if ctx.DataType != StudentRecord {
		t.Errorf("expected DataType = StudentRecord, got %v", ctx.DataType)
	}
	if ctx.Purpose != ParentNotification {
		t.Errorf("expected Purpose = ParentNotification, got %v", ctx.Purpose)
	}
}

func TestWithStrictModeOverride(t *testing.T) {
	ctx := NewContext(StudentRecord, ParentNotification, WithStrictMode(false))
	if ctx.StrictMode {
		t.Error("expected StrictMode override to false")
	}
}

func TestWithMetadataOverride(t *testing.T) {
	ctx := NewContext(StudentRecord, ParentNotification, WithMetadata(false))
	if ctx.IncludeMeta {
		t.Error("expected IncludeMeta override to false")
	}
}

func TestWithPurposeOverride(t *testing.T) {
	ctx := NewContext(StudentRecord, ParentNotification, WithPurpose(Audit))
	if ctx.Purpose != Audit {
		t.Errorf("expected Purpose = Audit, got %v", ctx.Purpose)
	}
}

func TestWithAdditionalFieldsToRemoveNormalizesCase(t *testing.T) {
	ctx := NewContext(StudentRecord, ParentNotification, WithAdditionalFieldsToRemove("HomeroomTeacher"))
	if _, ok := ctx.additionalFieldsToRemove["homeroomteacher"]; !ok {
		t.Error("expected token to be lowercased on insertion")
	}
}

func TestFactoryConstructorsSetPurpose(t *testing.T) {
	tests := []struct {
		name string
		ctx  *Context
		want Purpose
	}{
		{"ParentNotificationContext", ParentNotificationContext(StudentRecord), ParentNotification},
		{"DistrictSyncContext", DistrictSyncContext(StudentRecord), DistrictSync},
		{"StateReportingContext", StateReportingContext(StudentRecord), StateReporting},
		{"BackupContext", BackupContext(StudentRecord), Backup},
		{"AnalyticsContext", AnalyticsContext(StudentRecord), Analytics},
		{"AuditContext", AuditContext(StudentRecord), Audit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.ctx.Purpose != tt.want {
				t.Errorf("%s: Purpose = %v, want %v", tt.name, tt.ctx.Purpose, tt.want)
			}
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	if got := normalizeToken("SSN_Number"); got != "ssn_number" {
		t.Errorf("normalizeToken = %q, want %q", got, "ssn_number")
	}
}
