package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driven"
	"github.com/taxo-labs/taxo-cli/internal/logger"
)

// Ensure SkillExtractor implements the interface.
var _ driven.SkillExtractor = (*SkillExtractor)(nil)

// Extraction tuning. Lower temperature keeps extraction consistent
// across modules.
const (
	extractMaxTokens   = 2000
	extractTemperature = 0.3
)

// SkillExtractor extracts skills from learning outcomes using an LLM.
// It produces the same Skill shape as the rule-based classifier so the
// taxonomy builder stays agnostic to the extraction method.
type SkillExtractor struct {
	llm driven.LLMService
}

// NewSkillExtractor creates an LLM-backed skill extractor.
func NewSkillExtractor(llm driven.LLMService) *SkillExtractor {
	return &SkillExtractor{llm: llm}
}

// Name identifies the extraction method.
func (e *SkillExtractor) Name() string {
	return "llm:" + e.llm.ModelName()
}

// extractedSkill is the skill object the model is asked to return.
type extractedSkill struct {
	SkillName   string   `json:"skill_name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	SkillType   string   `json:"skill_type"`
	BloomsLevel string   `json:"blooms_level"`
	Keywords    []string `json:"keywords"`
}

// extractResponse is the JSON document the model is asked to return.
type extractResponse struct {
	Skills []extractedSkill `json:"skills"`
}

// ExtractSkills asks the model to extract skills from the module's
// learning outcomes and converts the response into domain records.
func (e *SkillExtractor) ExtractSkills(ctx context.Context, module domain.Module) ([]domain.Skill, error) {
	if !module.HasOutcomes() {
		return nil, nil
	}

	prompt := buildExtractPrompt(module)

	result, err := e.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   extractMaxTokens,
		Temperature: extractTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)
	}

	parsed, err := parseExtractResponse(result)
	if err != nil {
		logger.Warn("module %s: could not parse extraction response: %v", module.Code, err)
		return nil, fmt.Errorf("parsing extraction response: %w", err)
	}

	skills := make([]domain.Skill, 0, len(parsed.Skills))
	for _, s := range parsed.Skills {
		keywords := s.Keywords
		if keywords == nil {
			keywords = []string{}
		}
		skills = append(skills, domain.Skill{
			SkillName:   strings.TrimSpace(s.SkillName),
			Description: s.Description,
			Category:    normaliseCategory(s.Category),
			SkillType:   s.SkillType,
			BloomsLevel: normaliseBloom(s.BloomsLevel),
			Keywords:    keywords,
			Module:      module.Code,
		})
	}
	return skills, nil
}

// buildExtractPrompt renders the extraction prompt for one module. The
// module context grounds the model; outcomes are numbered so the model
// can reference them.
func buildExtractPrompt(m domain.Module) string {
	var b strings.Builder

	b.WriteString("Analyze the following learning outcomes from a university Computer Science module ")
	b.WriteString("and extract specific skills and competencies.\n\n")

	fmt.Fprintf(&b, "Module: %s\n", orDefault(m.Title, domain.UnknownField))
	if m.Level > 0 {
		fmt.Fprintf(&b, "Level: %d\n", m.Level)
	} else {
		b.WriteString("Level: Unknown\n")
	}
	fmt.Fprintf(&b, "Description: %s\n\n", orDefault(m.Description, "N/A"))

	b.WriteString("Learning Outcomes:\n")
	for i, outcome := range m.LearningOutcomes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, outcome)
	}

	b.WriteString(`
Please extract and categorize the skills into a structured format. For each skill:
1. Identify the specific skill or competency
2. Categorize it (e.g., Technical, Cognitive, Domain-Specific)
3. Assign a skill type (e.g., Programming, Problem-Solving, Analysis, Design, etc.)
4. Determine the Bloom's taxonomy level (Remember, Understand, Apply, Analyze, Evaluate, Create)

Return a JSON object with the following structure:
{
  "skills": [
    {
      "skill_name": "specific skill name",
      "description": "brief description of the skill",
      "category": "Technical|Cognitive|Domain-Specific|General",
      "skill_type": "more specific classification",
      "blooms_level": "Remember|Understand|Apply|Analyze|Evaluate|Create",
      "keywords": ["relevant", "keywords"]
    }
  ]
}

Be thorough and extract all distinct skills mentioned or implied in the learning outcomes.`)

	return b.String()
}

// parseExtractResponse recovers the JSON document from the model output.
// Models sometimes wrap the JSON in explanation text, so parsing uses
// the window between the first '{' and the last '}'.
func parseExtractResponse(text string) (*extractResponse, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var parsed extractResponse
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("decoding skills JSON: %w", err)
	}
	return &parsed, nil
}

// normaliseCategory maps free-form model output onto the known categories.
func normaliseCategory(s string) domain.Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "technical":
		return domain.CategoryTechnical
	case "cognitive":
		return domain.CategoryCognitive
	case "domain-specific", "domain specific":
		return domain.CategoryDomainSpecific
	default:
		return domain.CategoryGeneral
	}
}

// normaliseBloom maps free-form model output onto the known levels.
// Unrecognised levels fall back to Apply, matching the classifier default.
func normaliseBloom(s string) domain.BloomLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "remember":
		return domain.BloomRemember
	case "understand":
		return domain.BloomUnderstand
	case "apply":
		return domain.BloomApply
	case "analyze", "analyse":
		return domain.BloomAnalyze
	case "evaluate":
		return domain.BloomEvaluate
	case "create":
		return domain.BloomCreate
	default:
		return domain.BloomApply
	}
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
