package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for taxo resources.
	uriScheme = "taxo://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the full taxonomy.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "taxonomy",
		Name:        "taxonomy",
		Description: "The full generated skill taxonomy dataset",
		MIMEType:    "application/json",
	}, s.handleTaxonomyResource)

	// Static resource for the module list.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "modules",
		Name:        "modules",
		Description: "List of analysed modules with their skill counts",
		MIMEType:    "application/json",
	}, s.handleModulesResource)

	// Template for a single module.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "modules/{code}",
		Name:        "module",
		Description: "One module with its learning outcomes and extracted skills",
		MIMEType:    "application/json",
	}, s.handleModuleResource)
}

// handleTaxonomyResource returns the full dataset as JSON.
func (s *Server) handleTaxonomyResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	dataset, err := s.ports.Query.Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling dataset: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleModulesResource returns a compact module list.
func (s *Server) handleModulesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	dataset, err := s.ports.Query.Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}

	type moduleInfo struct {
		Code       string `json:"code"`
		Title      string `json:"title"`
		Level      int    `json:"level"`
		Outcomes   int    `json:"learning_outcomes"`
		SkillCount int    `json:"extracted_skills"`
	}

	infos := make([]moduleInfo, len(dataset.Modules))
	for i, m := range dataset.Modules {
		infos[i] = moduleInfo{
			Code:       m.Code,
			Title:      m.Title,
			Level:      m.Level,
			Outcomes:   len(m.LearningOutcomes),
			SkillCount: len(m.ExtractedSkills),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling modules: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleModuleResource returns one module by code.
func (s *Server) handleModuleResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	code := extractModuleCode(req.Params.URI)
	if code == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	module, err := s.ports.Query.Module(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("loading module %s: %w", code, err)
	}

	data, err := json.MarshalIndent(module, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling module: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractModuleCode extracts the module code from a URI like taxo://modules/{code}.
func extractModuleCode(uri string) string {
	const prefix = uriScheme + "modules/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
