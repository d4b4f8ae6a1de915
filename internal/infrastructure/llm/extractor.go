package llm

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	domainservice "github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/service"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

const maintenancePrompt = `You are an assistant for a commercial property manager.
Extract the maintenance request below into JSON with exactly these fields:
{"category": "hvac|plumbing|electrical|elevator|roofing|janitorial|landscaping|general",
 "summary": "one line summary",
 "description": "full description",
 "property_name": "property name if mentioned, else empty",
 "space_name": "suite or space if mentioned, else empty",
 "occupier_name": "tenant or occupier name if mentioned, else empty",
 "estimated_cost": number or null}
Respond with JSON only, no prose.

Request:
`

const documentPrompt = `You are an assistant for a commercial property manager.
Classify the document below and extract its fields as JSON:
{"class": "lease|invoice|work_order|other",
 "tenant_name": "", "property_name": "", "suite": "",
 "square_feet": number or null, "base_rent": number or null,
 "lease_start": "YYYY-MM-DD or empty", "lease_end": "YYYY-MM-DD or empty",
 "fields": {"any other notable field": "value"}}
Respond with JSON only, no prose.

File name: %FILE%

Document:
`

// Extractor implements the maintenance and document extractors on top of a
// language model.
type Extractor struct {
	llm domainservice.LLMClient
	log logger.Logger
}

// NewExtractor creates the extractor.
func NewExtractor(llm domainservice.LLMClient, log logger.Logger) *Extractor {
	return &Extractor{llm: llm, log: log.WithComponent("llm_extractor")}
}

// ExtractMaintenance parses a free-text maintenance report.
func (e *Extractor) ExtractMaintenance(ctx context.Context, text string) (*models.MaintenanceExtraction, error) {
	raw, err := e.llm.Complete(ctx, maintenancePrompt+text)
	if err != nil {
		return nil, err
	}

	var out struct {
		Category      string   `json:"category"`
		Summary       string   `json:"summary"`
		Description   string   `json:"description"`
		PropertyName  string   `json:"property_name"`
		SpaceName     string   `json:"space_name"`
		OccupierName  string   `json:"occupier_name"`
		EstimatedCost *float64 `json:"estimated_cost"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &out); err != nil {
		// Model broke the contract. Fall back to a general request carrying
		// the raw text so the report is never lost.
		e.log.Warn(ctx, "maintenance extraction returned malformed JSON, using fallback",
			logger.Error(err))
		return &models.MaintenanceExtraction{
			Category:    "general",
			Summary:     firstLine(text),
			Description: text,
		}, nil
	}

	extraction := &models.MaintenanceExtraction{
		Category:      strings.ToLower(strings.TrimSpace(out.Category)),
		Summary:       out.Summary,
		Description:   out.Description,
		PropertyName:  out.PropertyName,
		SpaceName:     out.SpaceName,
		OccupierName:  out.OccupierName,
		EstimatedCost: out.EstimatedCost,
	}
	if extraction.Category == "" {
		extraction.Category = "general"
	}
	if extraction.Description == "" {
		extraction.Description = text
	}
	return extraction, nil
}

// ExtractDocument classifies a document and extracts its structured fields.
func (e *Extractor) ExtractDocument(ctx context.Context, fileName, text string) (*models.DocumentExtraction, error) {
	prompt := strings.Replace(documentPrompt, "%FILE%", fileName, 1) + text

	raw, err := e.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var out struct {
		Class        string            `json:"class"`
		TenantName   string            `json:"tenant_name"`
		PropertyName string            `json:"property_name"`
		Suite        string            `json:"suite"`
		SquareFeet   *float64          `json:"square_feet"`
		BaseRent     *float64          `json:"base_rent"`
		LeaseStart   string            `json:"lease_start"`
		LeaseEnd     string            `json:"lease_end"`
		Fields       map[string]string `json:"fields"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &out); err != nil {
		return nil, errors.ErrLLM.WithMessage("document extraction returned malformed JSON").WithError(err)
	}

	extraction := &models.DocumentExtraction{
		Class:        strings.ToLower(strings.TrimSpace(out.Class)),
		TenantName:   out.TenantName,
		PropertyName: out.PropertyName,
		Suite:        out.Suite,
		SquareFeet:   out.SquareFeet,
		BaseRent:     out.BaseRent,
		Fields:       out.Fields,
	}
	extraction.LeaseStart = parseExtractedDate(out.LeaseStart)
	extraction.LeaseEnd = parseExtractedDate(out.LeaseEnd)
	return extraction, nil
}

// stripFences removes markdown code fences the model sometimes wraps JSON in.
func stripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	}
	return strings.TrimSpace(trimmed)
}

func parseExtractedDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i > 0 {
		return strings.TrimSpace(text[:i])
	}
	return strings.TrimSpace(text)
}
