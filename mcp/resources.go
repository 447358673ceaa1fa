package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/halcyonforge/eu5ref/core"
)

// resourceEntryCap bounds how many entries a collection resource returns;
// the count field still reports the full collection size.
const resourceEntryCap = 100

// listingPayload is the envelope for collection resources.
type listingPayload struct {
	Type  string        `json:"type"`
	Count int           `json:"count"`
	Data  []*core.Entry `json:"data"`
}

func (s *Server) registerResources() {
	collections := []struct {
		uri      string
		name     string
		desc     string
		category core.Category
		group    core.DataTypeGroup
	}{
		{uri: "eu5ref://modifiers", name: "Modifiers", desc: "All game modifiers", category: core.CategoryModifier},
		{uri: "eu5ref://effects", name: "Effects", desc: "All scripted effects", category: core.CategoryEffect},
		{uri: "eu5ref://triggers", name: "Triggers", desc: "All trigger conditions", category: core.CategoryTrigger},
		{uri: "eu5ref://event-targets", name: "Event Targets", desc: "All event targets", category: core.CategoryEventTarget},
		{uri: "eu5ref://data-types/common", name: "Common Data Types", desc: "Common data types", category: core.CategoryDataType, group: core.GroupCommon},
		{uri: "eu5ref://data-types/gui", name: "GUI Data Types", desc: "GUI data types", category: core.CategoryDataType, group: core.GroupGUI},
		{uri: "eu5ref://data-types/internalclausewitzgui", name: "Internal Clausewitz GUI Data Types", desc: "Internal Clausewitz GUI data types", category: core.CategoryDataType, group: core.GroupInternalClausewitzGUI},
		{uri: "eu5ref://data-types/script", name: "Script Data Types", desc: "Script data types", category: core.CategoryDataType, group: core.GroupScript},
		{uri: "eu5ref://data-types/uncategorized", name: "Uncategorized Data Types", desc: "Uncategorized data types", category: core.CategoryDataType, group: core.GroupUncategorized},
	}

	for _, col := range collections {
		resource := mcp.NewResource(col.uri, col.name,
			mcp.WithResourceDescription(col.desc),
			mcp.WithMIMEType("application/json"),
		)
		category, group := col.category, col.group
		uri := col.uri
		s.mcp.AddResource(resource, func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			payload, err := s.listingJSON(category, group)
			if err != nil {
				return nil, err
			}
			return jsonContents(uri, payload), nil
		})
	}

	statistics := mcp.NewResource("eu5ref://statistics", "Statistics",
		mcp.WithResourceDescription("Corpus entry counts and totals"),
		mcp.WithMIMEType("application/json"),
	)
	s.mcp.AddResource(statistics, func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		payload, err := json.MarshalIndent(map[string]any{
			"type": "statistics",
			"data": s.engine.Statistics(),
		}, "", "  ")
		if err != nil {
			return nil, err
		}
		return jsonContents("eu5ref://statistics", string(payload)), nil
	})
}

// listingJSON renders one collection as a bounded JSON listing.
func (s *Server) listingJSON(category core.Category, group core.DataTypeGroup) (string, error) {
	snapshot := s.source.Snapshot()

	var entries []*core.Entry
	var kind string
	if category == core.CategoryDataType {
		entries = snapshot.DataTypes(group)
		kind = "data_types_" + string(group)
	} else {
		entries = snapshot.Category(category)
		kind = string(category) + "s"
	}

	total := len(entries)
	if total > resourceEntryCap {
		entries = entries[:resourceEntryCap]
	}
	if entries == nil {
		entries = []*core.Entry{}
	}

	data, err := json.MarshalIndent(listingPayload{
		Type:  kind,
		Count: total,
		Data:  entries,
	}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func jsonContents(uri, payload string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     payload,
		},
	}
}
