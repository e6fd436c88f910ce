package domain

// Category is the broad competency dimension a skill belongs to.
type Category string

// Skill categories.
const (
	CategoryTechnical      Category = "Technical"
	CategoryCognitive      Category = "Cognitive"
	CategoryDomainSpecific Category = "Domain-Specific"
	CategoryGeneral        Category = "General"
)

// BloomLevel is a level of Bloom's taxonomy, the six-step ordinal
// classification of cognitive sophistication applied to learning outcomes.
type BloomLevel string

// Bloom's taxonomy levels, lowest to highest.
const (
	BloomRemember   BloomLevel = "Remember"
	BloomUnderstand BloomLevel = "Understand"
	BloomApply      BloomLevel = "Apply"
	BloomAnalyze    BloomLevel = "Analyze"
	BloomEvaluate   BloomLevel = "Evaluate"
	BloomCreate     BloomLevel = "Create"
)

// bloomRanks maps each level to its ordinal position on the scale.
var bloomRanks = map[BloomLevel]int{
	BloomRemember:   1,
	BloomUnderstand: 2,
	BloomApply:      3,
	BloomAnalyze:    4,
	BloomEvaluate:   5,
	BloomCreate:     6,
}

// Rank returns the ordinal position of the level (Remember=1 .. Create=6).
// Unrecognised levels rank as Apply, the default classification.
func (b BloomLevel) Rank() int {
	if r, ok := bloomRanks[b]; ok {
		return r
	}
	return bloomRanks[BloomApply]
}

// Proficiency is a coarse mastery level derived from observed Bloom levels.
type Proficiency string

// Proficiency levels, lowest to highest.
const (
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
)

// Skill is one classified tag extracted from a single learning outcome.
// A single outcome may yield several Skill records when it matches several
// classification rules, or exactly one General fallback record when it
// matches none.
type Skill struct {
	// SkillName is the derived name, shared by records that consolidate.
	SkillName string `json:"skill_name"`

	// Description is the outcome text truncated to 100 characters.
	Description string `json:"description"`

	// Category is the broad competency dimension.
	Category Category `json:"category"`

	// SkillType is the finer classification within the category.
	SkillType string `json:"skill_type"`

	// BloomsLevel is the Bloom classification of the source outcome.
	// All records from one outcome share the same level.
	BloomsLevel BloomLevel `json:"blooms_level"`

	// Keywords are the rule's candidate keywords found in the outcome.
	Keywords []string `json:"keywords"`

	// Module is the code of the module the outcome belongs to.
	Module string `json:"module"`
}

// ConsolidatedSkill merges every Skill record sharing an identical name.
// Name equality is exact and case-sensitive; near-duplicates stay apart.
type ConsolidatedSkill struct {
	// Name is the shared skill name of the merged records.
	Name string `json:"name"`

	// ProficiencyLevels is a monotonic prefix of the three-level scale,
	// derived from the highest Bloom rank observed across the records.
	ProficiencyLevels []Proficiency `json:"proficiency_levels"`

	// AppearsInModules lists the contributing module codes, sorted ascending.
	AppearsInModules []string `json:"appears_in_modules"`

	// BloomLevels is the sorted set of distinct Bloom levels observed.
	BloomLevels []BloomLevel `json:"bloom_levels"`
}
