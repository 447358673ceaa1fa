package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "(modifier,tax_modifier)",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "long content",
			content:  "(data_type,Character.GetPrimaryTitle.GetNameNoTooltip)",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("(modifier,tax_modifier)")
	id2 := IDFromContent("(effect,tax_modifier)")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestEntry_Key(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name: "modifier entry",
			entry: Entry{
				Name:     "tax_modifier",
				Category: CategoryModifier,
			},
			want: "(modifier,tax_modifier)",
		},
		{
			name: "data type entry",
			entry: Entry{
				Name:     "GetName",
				Category: CategoryDataType,
				Group:    GroupScript,
			},
			want: "(data_type,GetName)",
		},
		{
			name:  "empty entry",
			entry: Entry{},
			want:  "(,)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.entry.Key()
			if got != tt.want {
				t.Errorf("Entry.Key() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntry_Description(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name: "string description",
			entry: Entry{
				Name:       "tax_modifier",
				Attributes: map[string]any{"description": "Modifies base taxation"},
			},
			want: "Modifies base taxation",
		},
		{
			name: "no description attribute",
			entry: Entry{
				Name:       "stability",
				Attributes: map[string]any{"scope": "country"},
			},
			want: "",
		},
		{
			name: "non-string description",
			entry: Entry{
				Name:       "army_morale",
				Attributes: map[string]any{"description": 42},
			},
			want: "",
		},
		{
			name:  "nil attributes",
			entry: Entry{Name: "prestige"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.entry.Description()
			if got != tt.want {
				t.Errorf("Entry.Description() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategories_Complete(t *testing.T) {
	cats := Categories()
	if len(cats) != 5 {
		t.Fatalf("Categories() returned %d categories, want 5", len(cats))
	}
	seen := make(map[Category]bool)
	for _, c := range cats {
		if seen[c] {
			t.Errorf("Categories() returned duplicate %q", c)
		}
		seen[c] = true
	}
}

func TestDataTypeGroups_Complete(t *testing.T) {
	groups := DataTypeGroups()
	if len(groups) != 5 {
		t.Fatalf("DataTypeGroups() returned %d groups, want 5", len(groups))
	}
}
