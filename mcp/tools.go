package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/halcyonforge/eu5ref/core"
	"github.com/halcyonforge/eu5ref/search"
)

// lookupResponse is the envelope for exact_lookup results.
type lookupResponse struct {
	Name    string        `json:"name"`
	Count   int           `json:"count"`
	Results []*core.Entry `json:"results"`
}

// fuzzyResponse is the envelope for fuzzy_search results.
type fuzzyResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []search.Match `json:"results"`
}

// categoryResponse is the envelope for search_by_category results.
type categoryResponse struct {
	Category string        `json:"category"`
	Group    string        `json:"group,omitempty"`
	Query    string        `json:"query,omitempty"`
	Count    int           `json:"count"`
	Results  []*core.Entry `json:"results"`
}

// scopeResponse is the envelope for search_by_scope results.
type scopeResponse struct {
	Scope   string        `json:"scope"`
	Count   int           `json:"count"`
	Results []*core.Entry `json:"results"`
}

// serverInfo is the envelope for the server_info tool.
type serverInfo struct {
	Name        string        `json:"name"`
	Version     string        `json:"version"`
	Description string        `json:"description"`
	Features    []string      `json:"features"`
	Statistics  *search.Stats `json:"statistics"`
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("ping",
		mcp.WithDescription("Check that the server is running"),
	), s.handlePing)

	s.mcp.AddTool(mcp.NewTool("server_info",
		mcp.WithDescription("Get server information and a feature overview"),
	), s.handleServerInfo)

	s.mcp.AddTool(mcp.NewTool("exact_lookup",
		mcp.WithDescription("Look up entries by exact name (case-insensitive) across all categories"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Entry name to look up")),
	), s.handleExactLookup)

	s.mcp.AddTool(mcp.NewTool("fuzzy_search",
		mcp.WithDescription("Search entries by approximate name match, ranked by similarity"),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 10)")),
	), s.handleFuzzySearch)

	s.mcp.AddTool(mcp.NewTool("search_by_category",
		mcp.WithDescription("List entries of one category (modifier, effect, trigger, event_target, data_type) in corpus order, optionally filtered by a query"),
		mcp.WithString("category", mcp.Required(), mcp.Description("Category name")),
		mcp.WithString("group", mcp.Description("Data type group (common, gui, internalclausewitzgui, script, uncategorized); required for data_type")),
		mcp.WithString("query", mcp.Description("Keep only entries whose name or description contains this text")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 10)")),
	), s.handleSearchByCategory)

	s.mcp.AddTool(mcp.NewTool("search_by_scope",
		mcp.WithDescription("List entries declaring a scope tag such as country or province"),
		mcp.WithString("scope", mcp.Required(), mcp.Description("Scope name")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 10)")),
	), s.handleSearchByScope)

	s.mcp.AddTool(mcp.NewTool("get_statistics",
		mcp.WithDescription("Get per-category entry counts and corpus totals"),
	), s.handleStatistics)
}

func (s *Server) handlePing(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("eu5ref MCP server is running"), nil
}

func (s *Server) handleServerInfo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.jsonResult(s.serverInfo())
}

func (s *Server) serverInfo() serverInfo {
	return serverInfo{
		Name:        serverName,
		Version:     serverVersion,
		Description: "Model Context Protocol server for Europa Universalis V modding reference data",
		Features: []string{
			"exact name lookup across all categories",
			"fuzzy search ranked by name similarity",
			"category and data-type group listings",
			"scope listings",
			"corpus statistics",
		},
		Statistics: s.engine.Statistics(),
	}
}

func (s *Server) handleExactLookup(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := s.engine.ExactLookup(name)
	return s.jsonResult(lookupResponse{
		Name:    name,
		Count:   len(results),
		Results: results,
	})
}

func (s *Server) handleFuzzySearch(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := request.GetInt("limit", search.DefaultLimit)

	results := s.engine.FuzzySearch(query, limit)
	return s.jsonResult(fuzzyResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	})
}

func (s *Server) handleSearchByCategory(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, err := request.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	group := request.GetString("group", "")
	query := request.GetString("query", "")
	limit := request.GetInt("limit", search.DefaultLimit)

	results, err := s.engine.SearchByCategory(category, group, query, limit)
	if err != nil {
		// validation failure is a per-call error, not a protocol failure
		return mcp.NewToolResultError(err.Error()), nil
	}
	return s.jsonResult(categoryResponse{
		Category: category,
		Group:    group,
		Query:    query,
		Count:    len(results),
		Results:  results,
	})
}

func (s *Server) handleSearchByScope(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scope, err := request.RequireString("scope")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := request.GetInt("limit", search.DefaultLimit)

	results := s.engine.SearchByScope(scope, limit)
	return s.jsonResult(scopeResponse{
		Scope:   scope,
		Count:   len(results),
		Results: results,
	})
}

func (s *Server) handleStatistics(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.jsonResult(map[string]*search.Stats{
		"statistics": s.engine.Statistics(),
	})
}

func (s *Server) jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.logger.Error("error marshaling tool result", "err", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
