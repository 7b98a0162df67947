package finding

import "testing"

func TestSeverityIsValid(t *testing.T) {
	for _, s := range AllSeverities() {
		if !s.IsValid() {
			t.Errorf("IsValid(%q) = false, want true", s)
		}
	}
	if Severity("catastrophic").IsValid() {
		t.Error("IsValid(catastrophic) = true, want false")
	}
	if Severity("").IsValid() {
		t.Error("IsValid(empty) = true, want false")
	}
}

func TestValidate(t *testing.T) {
	valid := Finding{
		ID:       "gt-1",
		Category: "injection",
		Severity: SeverityHigh,
		Location: "db/query.go:42",
	}
	if err := Validate(valid, true); err != nil {
		t.Fatalf("Validate(valid) = %v, want nil", err)
	}

	tests := []struct {
		name      string
		mutate    func(f Finding) Finding
		requireID bool
		wantField string
	}{
		{
			name:      "missing id when required",
			mutate:    func(f Finding) Finding { f.ID = ""; return f },
			requireID: true,
			wantField: "id",
		},
		{
			name:      "blank category",
			mutate:    func(f Finding) Finding { f.Category = "  "; return f },
			wantField: "category",
		},
		{
			name:      "unknown severity",
			mutate:    func(f Finding) Finding { f.Severity = "mild"; return f },
			wantField: "severity",
		},
		{
			name:      "missing location",
			mutate:    func(f Finding) Finding { f.Location = ""; return f },
			wantField: "location",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.mutate(valid), tt.requireID)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			fieldErr, ok := err.(*FieldError)
			if !ok {
				t.Fatalf("Validate() error type = %T, want *FieldError", err)
			}
			if fieldErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", fieldErr.Field, tt.wantField)
			}
		})
	}

	// Submissions may omit the ID.
	noID := valid
	noID.ID = ""
	if err := Validate(noID, false); err != nil {
		t.Errorf("Validate(submission without id) = %v, want nil", err)
	}
}

func TestValidateAll(t *testing.T) {
	fs := []Finding{
		{Category: "crypto", Severity: SeverityLow, Location: "a.go:1"},
		{Category: "crypto", Severity: "bogus", Location: "b.go:2"},
	}
	idx, err := ValidateAll(fs, false)
	if err == nil {
		t.Fatal("ValidateAll() = nil, want error")
	}
	if idx != 1 {
		t.Errorf("index = %d, want 1", idx)
	}

	idx, err = ValidateAll(fs[:1], false)
	if err != nil {
		t.Fatalf("ValidateAll(valid slice) = %v, want nil", err)
	}
	if idx != -1 {
		t.Errorf("index = %d, want -1", idx)
	}
}

func TestDefaultMatcherByID(t *testing.T) {
	sub := Finding{ID: "gt-3", Category: "logic", Severity: SeverityMedium, Location: "handler.go:10"}
	truth := Finding{ID: "gt-3", Category: "injection", Severity: SeverityHigh, Location: "elsewhere.go:99"}
	if !DefaultMatcher(sub, truth) {
		t.Error("matching IDs should match regardless of other fields")
	}
	truth.ID = "gt-4"
	if DefaultMatcher(sub, truth) {
		t.Error("differing IDs should not match")
	}
}

func TestDefaultMatcherByLocation(t *testing.T) {
	truth := Finding{ID: "gt-1", Category: "injection", Severity: SeverityHigh, Location: "db/query.go:42"}

	tests := []struct {
		name string
		sub  Finding
		want bool
	}{
		{
			name: "exact category and location",
			sub:  Finding{Category: "injection", Severity: SeverityHigh, Location: "db/query.go:42"},
			want: true,
		},
		{
			name: "location differs in case and spacing",
			sub:  Finding{Category: "Injection", Severity: SeverityLow, Location: "  DB/Query.go:42 "},
			want: true,
		},
		{
			name: "category mismatch",
			sub:  Finding{Category: "crypto-defaults", Severity: SeverityHigh, Location: "db/query.go:42"},
			want: false,
		},
		{
			name: "location mismatch",
			sub:  Finding{Category: "injection", Severity: SeverityHigh, Location: "db/query.go:43"},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultMatcher(tt.sub, truth); got != tt.want {
				t.Errorf("DefaultMatcher() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"db/query.go:42", "db/query.go:42"},
		{"  DB/Query.go:42 ", "db/query.go:42"},
		{"line   12,  col 3", "line 12, col 3"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLocation(tt.in); got != tt.want {
			t.Errorf("NormalizeLocation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
