package errors

import "testing"

func TestErrorCodeTaxonomy(t *testing.T) {
	tests := []struct {
		name string
		code string
		kind string
	}{
		{"TYP001", TYP001, "unbound_variable"},
		{"TYP002", TYP002, "unbound_type_variable"},
		{"TYP003", TYP003, "type_mismatch"},
		{"TYP004", TYP004, "cyclic_type"},
		{"TYP005", TYP005, "non_linear_pattern"},
		{"TYP006", TYP006, "parse_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, exists := GetErrorInfo(tt.code)
			if !exists {
				t.Fatalf("error code %s not found in registry", tt.code)
			}
			if info.Code != tt.code {
				t.Errorf("code mismatch: got %s, want %s", info.Code, tt.code)
			}
			if info.Kind != tt.kind {
				t.Errorf("kind mismatch for %s: got %s, want %s", tt.code, info.Kind, tt.kind)
			}
		})
	}
}

func TestAllErrorCodesHaveDescriptions(t *testing.T) {
	for code, info := range ErrorRegistry {
		if info.Code != code {
			t.Errorf("code mismatch in registry: key=%s, info.Code=%s", code, info.Code)
		}
		if info.Description == "" {
			t.Errorf("empty description for %s", code)
		}
	}
}

func TestUnknownCodeIsAbsent(t *testing.T) {
	if _, exists := GetErrorInfo("TYP999"); exists {
		t.Errorf("expected TYP999 to be absent from the registry")
	}
}
