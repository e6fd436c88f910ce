package services

import (
	"sort"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
)

// Proficiency thresholds over the maximum observed Bloom rank.
const (
	beginnerMaxRank     = 2 // Remember, Understand
	intermediateMaxRank = 4 // Apply, Analyze
)

// skillAccumulator gathers the evidence for one skill name.
type skillAccumulator struct {
	modules map[string]struct{}
	blooms  map[domain.BloomLevel]struct{}
}

// Consolidate merges skill records sharing an identical name. Grouping
// is exact, case-sensitive string equality; no fuzzy matching. Output
// order is the first-seen order of distinct names in the input, so a
// second run over the same input reproduces the same sequence.
func Consolidate(skills []domain.Skill) []domain.ConsolidatedSkill {
	// Ordered grouping: key slice for order, map for accumulation.
	order := []string{}
	groups := map[string]*skillAccumulator{}

	for _, s := range skills {
		acc, ok := groups[s.SkillName]
		if !ok {
			acc = &skillAccumulator{
				modules: map[string]struct{}{},
				blooms:  map[domain.BloomLevel]struct{}{},
			}
			groups[s.SkillName] = acc
			order = append(order, s.SkillName)
		}
		acc.modules[s.Module] = struct{}{}
		acc.blooms[s.BloomsLevel] = struct{}{}
	}

	consolidated := make([]domain.ConsolidatedSkill, 0, len(order))
	for _, name := range order {
		acc := groups[name]

		modules := make([]string, 0, len(acc.modules))
		for code := range acc.modules {
			modules = append(modules, code)
		}
		sort.Strings(modules)

		blooms := make([]domain.BloomLevel, 0, len(acc.blooms))
		for b := range acc.blooms {
			blooms = append(blooms, b)
		}
		// Lexicographic, matching the interchange format's sorted set.
		sort.Slice(blooms, func(i, j int) bool { return blooms[i] < blooms[j] })

		consolidated = append(consolidated, domain.ConsolidatedSkill{
			Name:              name,
			ProficiencyLevels: proficiencyLadder(blooms),
			AppearsInModules:  modules,
			BloomLevels:       blooms,
		})
	}

	return consolidated
}

// proficiencyLadder derives the monotonic proficiency prefix from the
// maximum Bloom rank observed in the group.
func proficiencyLadder(blooms []domain.BloomLevel) []domain.Proficiency {
	maxRank := 0
	for _, b := range blooms {
		if r := b.Rank(); r > maxRank {
			maxRank = r
		}
	}

	switch {
	case maxRank <= beginnerMaxRank:
		return []domain.Proficiency{domain.ProficiencyBeginner}
	case maxRank <= intermediateMaxRank:
		return []domain.Proficiency{domain.ProficiencyBeginner, domain.ProficiencyIntermediate}
	default:
		return []domain.Proficiency{domain.ProficiencyBeginner, domain.ProficiencyIntermediate, domain.ProficiencyAdvanced}
	}
}
