package sanitize

import "testing"

func TestRedactSSNAndIPv4(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "ssn only",
			in:   "SSN: 111-22-3333",
			want: "SSN: [SSN]",
		},
		{
			name: "ipv4 only",
			in:   "server at 10.0.0.5",
			want: "server at [IP]",
		},
		{
			name: "both",
			in:   "SSN 111-22-3333 from 192.168.1.1",
			want: "SSN [SSN] from [IP]",
		},
		{
			name: "neither",
			in:   "no sensitive content here",
			want: "no sensitive content here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := redactSSNAndIPv4(tt.in, "[SSN]", "[IP]")
			if got != tt.want {
				t.Errorf("redactSSNAndIPv4(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPatternsCompileAndMatchSeedExamples(t *testing.T) {
	if !ssnPattern.MatchString("111-22-3333") {
		t.Error("ssnPattern should match a well-formed SSN")
	}
	if !phonePattern.MatchString("(555) 123-4567") {
		t.Error("phonePattern should match a parenthesized phone number")
	}
	if !emailPattern.MatchString("jane.doe@school.example.org") {
		t.Error("emailPattern should match a well-formed email")
	}
	if !addressPattern.MatchString("123 Main Street") {
		t.Error("addressPattern should match a US street address")
	}
	if !zipPattern.MatchString("94107-1234") {
		t.Error("zipPattern should match a ZIP+4")
	}
	if !ipv4Pattern.MatchString("192.168.1.1") {
		t.Error("ipv4Pattern should match a dotted-quad address")
	}
}
