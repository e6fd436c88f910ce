package services

import (
	"strings"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
)

// Derived-name length limits for main-skill extraction.
const (
	verbatimNameLimit = 60  // outcomes shorter than this are used as-is
	clauseNameLimit   = 80  // first clause must be shorter than this
	contextNameChars  = 40  // chars of outcome quoted in context names
	fallbackNameChars = 50  // chars used for the General fallback name
	descriptionChars  = 100 // chars kept as the record description
)

// classificationRule pairs a keyword disjunction with the category and
// skill type it assigns. Rules are evaluated in order and are
// non-exclusive: a single outcome may fire several rules, one record per
// match, because one sentence can exercise several skill dimensions.
type classificationRule struct {
	// context is the human-readable label used in derived skill names.
	context string

	// triggers are substring cues tested against the lower-cased outcome.
	triggers []string

	category  domain.Category
	skillType string

	// candidates are the keywords attached to emitted records when they
	// literally appear in the outcome. No stemming, no deduplication.
	candidates []string
}

// classificationRules is the fixed rule set. Order determines the order
// of records emitted for a multi-match outcome.
var classificationRules = []classificationRule{
	{
		context:    "Programming",
		triggers:   []string{"program", "code", "compile", "debug", "algorithm", "data structure", "function", "method", "procedure"},
		category:   domain.CategoryTechnical,
		skillType:  "Programming",
		candidates: []string{"program", "code", "function", "algorithm"},
	},
	{
		context:    "Design & Development",
		triggers:   []string{"design", "develop", "create", "build", "construct"},
		category:   domain.CategoryTechnical,
		skillType:  "Software Design",
		candidates: []string{"design", "develop", "architecture"},
	},
	{
		context:    "Conceptual Understanding",
		triggers:   []string{"understand", "comprehend", "aware", "familiar", "describe", "explain"},
		category:   domain.CategoryCognitive,
		skillType:  "Comprehension",
		candidates: []string{"understand", "knowledge", "theory"},
	},
	{
		context:    "Analysis & Testing",
		triggers:   []string{"test", "debug", "evaluate", "analyze", "assess"},
		category:   domain.CategoryTechnical,
		skillType:  "Testing & Debugging",
		candidates: []string{"test", "debug", "analyze"},
	},
	{
		context:    "Systems & Architecture",
		triggers:   []string{"architecture", "organization", "system", "structure"},
		category:   domain.CategoryDomainSpecific,
		skillType:  "Computer Architecture",
		candidates: []string{"architecture", "system", "hardware"},
	},
	{
		context:    "Theoretical Foundations",
		triggers:   []string{"logic", "proof", "mathematical", "formal", "automata"},
		category:   domain.CategoryDomainSpecific,
		skillType:  "Theory & Mathematics",
		candidates: []string{"logic", "proof", "mathematical"},
	},
	{
		context:    "Problem Solving",
		triggers:   []string{"problem", "solve", "solution"},
		category:   domain.CategoryCognitive,
		skillType:  "Problem-Solving",
		candidates: []string{"problem", "solve", "solution"},
	},
	{
		context:    "Data Management",
		triggers:   []string{"data", "information", "database"},
		category:   domain.CategoryTechnical,
		skillType:  "Data Science",
		candidates: []string{"data", "information", "analysis"},
	},
}

// bloomRule maps a Bloom level to its action-verb cues.
type bloomRule struct {
	level domain.BloomLevel
	verbs []string
}

// bloomRules are tested in fixed priority order and the first match wins:
// an outcome containing both a Remember verb and a Create verb classifies
// as Remember. The order conflates taxonomy rank with match priority;
// it is preserved as-is for compatibility with existing datasets.
var bloomRules = []bloomRule{
	{domain.BloomRemember, []string{"define", "list", "name", "identify", "recall", "recognize"}},
	{domain.BloomUnderstand, []string{"understand", "comprehend", "explain", "describe", "summarize", "interpret", "classify"}},
	{domain.BloomApply, []string{"apply", "use", "solve", "implement", "execute", "carry out", "write", "run"}},
	{domain.BloomAnalyze, []string{"analyze", "examine", "compare", "contrast", "differentiate", "organize", "test", "debug"}},
	{domain.BloomEvaluate, []string{"evaluate", "assess", "judge", "critique", "justify", "argue", "defend"}},
	{domain.BloomCreate, []string{"create", "design", "develop", "construct", "build", "formulate", "generate", "plan"}},
}

// ClassifyOutcome maps one learning outcome to its skill records for the
// given module. The Bloom level is classified once per outcome and shared
// by every record it produces. When no rule fires, exactly one General
// Competency fallback record is emitted, so the result is never empty.
func ClassifyOutcome(outcome, moduleCode string) []domain.Skill {
	lower := strings.ToLower(outcome)
	bloom := bloomLevelFor(lower)
	description := truncateRunes(outcome, descriptionChars)

	var skills []domain.Skill
	for _, rule := range classificationRules {
		if !containsAny(lower, rule.triggers) {
			continue
		}
		skills = append(skills, domain.Skill{
			SkillName:   mainSkillName(outcome, rule.context),
			Description: description,
			Category:    rule.category,
			SkillType:   rule.skillType,
			BloomsLevel: bloom,
			Keywords:    matchingKeywords(lower, rule.candidates),
			Module:      moduleCode,
		})
	}

	if len(skills) == 0 {
		skills = append(skills, domain.Skill{
			SkillName:   truncateRunes(outcome, fallbackNameChars),
			Description: description,
			Category:    domain.CategoryGeneral,
			SkillType:   "General Competency",
			BloomsLevel: bloom,
			Keywords:    []string{},
			Module:      moduleCode,
		})
	}

	return skills
}

// bloomLevelFor classifies lower-cased outcome text against the verb
// lists, defaulting to Apply when no verb matches.
func bloomLevelFor(lower string) domain.BloomLevel {
	for _, rule := range bloomRules {
		if containsAny(lower, rule.verbs) {
			return rule.level
		}
	}
	return domain.BloomApply
}

// mainSkillName derives the skill name shared by all rules: short
// outcomes verbatim, otherwise the first clause when it is concise,
// otherwise a context-labelled excerpt.
func mainSkillName(outcome, context string) string {
	outcome = strings.TrimSpace(outcome)

	if runeLen(outcome) < verbatimNameLimit {
		return outcome
	}

	firstClause := outcome
	if i := strings.IndexAny(outcome, ",;"); i >= 0 {
		firstClause = outcome[:i]
	}
	if runeLen(firstClause) < clauseNameLimit {
		return firstClause
	}

	return context + " - " + truncateRunes(outcome, contextNameChars) + "..."
}

// matchingKeywords keeps the candidates that literally appear in the
// lower-cased outcome, preserving candidate order.
func matchingKeywords(lower string, candidates []string) []string {
	keywords := []string{}
	for _, kw := range candidates {
		if strings.Contains(lower, kw) {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// truncateRunes shortens s to at most n runes. Truncation is not
// word-boundary-safe; it mirrors plain prefix slicing.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func runeLen(s string) int {
	return len([]rune(s))
}
