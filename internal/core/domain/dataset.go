package domain

// Extraction is the output of the skill-extraction stage: the enriched
// modules, the flat skill sequence in module/outcome/rule order, and the
// totals. Modules without learning outcomes are absent.
type Extraction struct {
	Modules      []Module `json:"modules"`
	AllSkills    []Skill  `json:"all_skills"`
	TotalModules int      `json:"total_modules"`
	TotalSkills  int      `json:"total_skills"`
}

// Dataset is the persisted interchange document between pipeline stages.
// It round-trips losslessly through JSON; key order is not significant.
type Dataset struct {
	Taxonomy     Taxonomy `json:"taxonomy"`
	Modules      []Module `json:"modules"`
	TotalSkills  int      `json:"total_skills"`
	TotalModules int      `json:"total_modules"`
}
