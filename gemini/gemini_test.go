package gemini

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseEnrichment(t *testing.T) {
	data := []byte(`{
		"subTitle": "名古屋最重要的神社",
		"description": "參拜後可在寶物館看草薙劍相關展示。",
		"locationKeyword": "Atsuta Jingu",
		"suggestedBudget": 500
	}`)

	enr, err := parseEnrichment(data)
	if err != nil {
		t.Fatalf("parseEnrichment() returned an unexpected error: %v", err)
	}
	if enr == nil {
		t.Fatalf("parseEnrichment() = nil for a complete answer")
	}
	if enr.SubTitle != "名古屋最重要的神社" || enr.LocationKeyword != "Atsuta Jingu" {
		t.Errorf("parseEnrichment() lost text fields: %+v", enr)
	}
	if !enr.SuggestedBudget.Equal(decimal.NewFromInt(500)) {
		t.Errorf("SuggestedBudget = %s, want 500", enr.SuggestedBudget)
	}
}

func TestParseEnrichmentPartial(t *testing.T) {
	// A budget-less answer is still an enrichment.
	enr, err := parseEnrichment([]byte(`{"subTitle":"免費景點","description":"","locationKeyword":""}`))
	if err != nil {
		t.Fatalf("parseEnrichment() returned an unexpected error: %v", err)
	}
	if enr == nil || enr.SubTitle != "免費景點" {
		t.Errorf("parseEnrichment() = %+v, want the partial answer kept", enr)
	}
	if enr.SuggestedBudget.IsPositive() {
		t.Errorf("SuggestedBudget = %s, want zero", enr.SuggestedBudget)
	}
}

func TestParseEnrichmentEmpty(t *testing.T) {
	// An all-empty answer means the model had nothing to say.
	enr, err := parseEnrichment([]byte(`{"subTitle":"","description":"","locationKeyword":"","suggestedBudget":0}`))
	if err != nil {
		t.Fatalf("parseEnrichment() returned an unexpected error: %v", err)
	}
	if enr != nil {
		t.Errorf("parseEnrichment() = %+v, want nil for an empty answer", enr)
	}
}

func TestParseEnrichmentMalformed(t *testing.T) {
	tests := []string{
		`not json at all`,
		`{"suggestedBudget":"plenty"}`,
		``,
	}
	for _, data := range tests {
		if _, err := parseEnrichment([]byte(data)); err == nil {
			t.Errorf("parseEnrichment(%q) accepted a malformed answer", data)
		}
	}
}
