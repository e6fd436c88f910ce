package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LookupSkillInput is the input schema for the lookup_skill tool.
type LookupSkillInput struct {
	Name string `json:"name" jsonschema:"skill name or fragment to look up (case-insensitive)"`
}

// LookupSkillOutput is the output schema for the lookup_skill tool.
type LookupSkillOutput struct {
	Matches []SkillMatch `json:"matches"`
	Count   int          `json:"count"`
}

// SkillMatch is one consolidated skill with its place in the taxonomy.
type SkillMatch struct {
	Name              string   `json:"name"`
	Domain            string   `json:"domain"`
	SubCategory       string   `json:"sub_category"`
	AppearsInModules  []string `json:"appears_in_modules"`
	BloomLevels       []string `json:"bloom_levels"`
	ProficiencyLevels []string `json:"proficiency_levels"`
}

// ListDomainsInput is the input schema for the list_domains tool.
type ListDomainsInput struct{}

// ListDomainsOutput is the output schema for the list_domains tool.
type ListDomainsOutput struct {
	Domains      []DomainInfo `json:"domains"`
	TotalSkills  int          `json:"total_skills"`
	TotalModules int          `json:"total_modules"`
}

// DomainInfo summarises one taxonomy domain.
type DomainInfo struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	SubCategories []string `json:"sub_categories"`
	SkillCount    int      `json:"skill_count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_skill",
		Description: "Look up consolidated skills in the generated taxonomy by name",
	}, s.handleLookupSkill)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_domains",
		Description: "List the taxonomy domains with their sub-categories and skill counts",
	}, s.handleListDomains)
}

// handleLookupSkill handles the lookup_skill tool invocation.
func (s *Server) handleLookupSkill(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LookupSkillInput,
) (*mcp.CallToolResult, LookupSkillOutput, error) {
	locations, err := s.ports.Query.LookupSkill(ctx, input.Name)
	if err != nil {
		return nil, LookupSkillOutput{}, err
	}

	output := LookupSkillOutput{
		Matches: make([]SkillMatch, len(locations)),
		Count:   len(locations),
	}

	for i, loc := range locations {
		blooms := make([]string, len(loc.Skill.BloomLevels))
		for j, b := range loc.Skill.BloomLevels {
			blooms[j] = string(b)
		}
		profs := make([]string, len(loc.Skill.ProficiencyLevels))
		for j, p := range loc.Skill.ProficiencyLevels {
			profs[j] = string(p)
		}

		output.Matches[i] = SkillMatch{
			Name:              loc.Skill.Name,
			Domain:            loc.Domain,
			SubCategory:       loc.SubCategory,
			AppearsInModules:  loc.Skill.AppearsInModules,
			BloomLevels:       blooms,
			ProficiencyLevels: profs,
		}
	}

	return nil, output, nil
}

// handleListDomains handles the list_domains tool invocation.
func (s *Server) handleListDomains(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListDomainsInput,
) (*mcp.CallToolResult, ListDomainsOutput, error) {
	dataset, err := s.ports.Query.Dataset(ctx)
	if err != nil {
		return nil, ListDomainsOutput{}, err
	}

	output := ListDomainsOutput{
		Domains:      make([]DomainInfo, len(dataset.Taxonomy.Domains)),
		TotalSkills:  dataset.TotalSkills,
		TotalModules: dataset.TotalModules,
	}

	for i, d := range dataset.Taxonomy.Domains {
		subs := make([]string, len(d.SubCategories))
		count := 0
		for j, sc := range d.SubCategories {
			subs[j] = sc.Name
			count += len(sc.Skills)
		}
		output.Domains[i] = DomainInfo{
			Name:          d.Name,
			Description:   d.Description,
			SubCategories: subs,
			SkillCount:    count,
		}
	}

	return nil, output, nil
}
