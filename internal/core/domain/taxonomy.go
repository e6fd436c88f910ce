package domain

// Taxonomy is the final hierarchy: domain -> sub-category -> skill.
// Iteration order over domains and sub-categories is first-encounter
// order from the grouping pass, preserved for determinism.
type Taxonomy struct {
	Domains []TaxonomyDomain `json:"domains"`
}

// TaxonomyDomain groups sub-categories under one skill category.
type TaxonomyDomain struct {
	// Name is the category value shared by all skills below.
	Name string `json:"name"`

	// Description is a fixed template string, not content-derived.
	Description string `json:"description"`

	// SubCategories are the skill-type groups, in first-encounter order.
	SubCategories []SubCategory `json:"sub_categories"`
}

// SubCategory groups consolidated skills sharing one skill type.
type SubCategory struct {
	// Name is the skill type shared by all skills below.
	Name string `json:"name"`

	// Description is a fixed template string, not content-derived.
	Description string `json:"description"`

	// Skills are the consolidated skills, in first-seen name order.
	Skills []ConsolidatedSkill `json:"skills"`
}

// SkillCount returns the number of consolidated skills across the taxonomy.
func (t Taxonomy) SkillCount() int {
	n := 0
	for _, d := range t.Domains {
		for _, sc := range d.SubCategories {
			n += len(sc.Skills)
		}
	}
	return n
}
