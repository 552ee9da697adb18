// Package gemini enriches new itinerary entries with Gemini-generated
// descriptive fields and a suggested budget.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"github.com/tkumagai/tabiplan"
)

// DefaultModel is the model used for enrichment requests.
const DefaultModel = "gemini-3-flash-preview"

// Service asks Gemini for supplementary data about a travel spot. It
// implements tabiplan.Enricher.
type Service struct {
	client *genai.Client
	model  string
}

// New creates the enrichment service. Credentials come from the environment
// (GEMINI_API_KEY), resolved by the genai SDK itself.
func New(ctx context.Context) (*Service, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not initialize Gemini client: %w", err)
	}
	return &Service{client: client, model: DefaultModel}, nil
}

// responseSchema constrains the model to the enrichment record. The budget is
// optional; the three text fields are required.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"subTitle":        {Type: genai.TypeString, Description: "簡短副標題"},
		"description":     {Type: genai.TypeString, Description: "詳細攻略、必看重點或小叮嚀（繁體中文）"},
		"locationKeyword": {Type: genai.TypeString, Description: "Google Maps 搜尋關鍵字"},
		"suggestedBudget": {Type: genai.TypeNumber, Description: "預估每人花費（日圓）"},
	},
	Required: []string{"subTitle", "description", "locationKeyword"},
}

// Enrich asks the model about one travel spot. Callers treat any error as "no
// data"; the card is still created without it.
func (s *Service) Enrich(ctx context.Context, title string, category tabiplan.Category) (*tabiplan.Enrichment, error) {
	prompt := fmt.Sprintf("分析旅遊地點「%s」（類別: %s）。請回傳該地點的簡短副標題、詳細攻略與小叮嚀（繁體中文）、Google Maps 搜尋關鍵字，以及預估每人花費（日圓）。", title, category)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   responseSchema,
	}
	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("enrichment request failed: %w", err)
	}
	return parseEnrichment([]byte(resp.Text()))
}

// parseEnrichment decodes the model's JSON answer into the enrichment record.
func parseEnrichment(data []byte) (*tabiplan.Enrichment, error) {
	var enr tabiplan.Enrichment
	if err := json.Unmarshal(data, &enr); err != nil {
		return nil, fmt.Errorf("malformed enrichment response %q: %w", string(data), err)
	}
	if enr.SubTitle == "" && enr.Description == "" && enr.LocationKeyword == "" && !enr.SuggestedBudget.IsPositive() {
		return nil, nil // the model had nothing to say
	}
	return &enr, nil
}
