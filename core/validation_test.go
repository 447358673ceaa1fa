package core

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr error
	}{
		{
			name:  "lowercase",
			input: "modifier",
			want:  CategoryModifier,
		},
		{
			name:  "mixed case",
			input: "Effect",
			want:  CategoryEffect,
		},
		{
			name:  "snake case",
			input: "event_target",
			want:  CategoryEventTarget,
		},
		{
			name:  "camel case spelling",
			input: "EventTarget",
			want:  CategoryEventTarget,
		},
		{
			name:  "data type camel case",
			input: "DataType",
			want:  CategoryDataType,
		},
		{
			name:  "surrounding whitespace",
			input: " trigger ",
			want:  CategoryTrigger,
		},
		{
			name:    "unknown category",
			input:   "decision",
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseCategory(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseCategory(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDataTypeGroup(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DataTypeGroup
		wantErr error
	}{
		{
			name:  "lowercase",
			input: "script",
			want:  GroupScript,
		},
		{
			name:  "capitalized",
			input: "Script",
			want:  GroupScript,
		},
		{
			name:  "gui group",
			input: "GUI",
			want:  GroupGUI,
		},
		{
			name:  "internal clausewitz gui",
			input: "InternalClausewitzGUI",
			want:  GroupInternalClausewitzGUI,
		},
		{
			name:    "unknown group",
			input:   "frontend",
			wantErr: ErrInvalidDataTypeGroup,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: ErrInvalidDataTypeGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDataTypeGroup(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseDataTypeGroup(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseDataTypeGroup(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDataTypeGroup(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   *Entry
		wantErr error
	}{
		{
			name: "valid modifier",
			entry: &Entry{
				Name:     "tax_modifier",
				Category: CategoryModifier,
			},
			wantErr: nil,
		},
		{
			name: "valid modifier with scope",
			entry: &Entry{
				Name:     "tax_modifier",
				Category: CategoryModifier,
				Scope:    "country",
			},
			wantErr: nil,
		},
		{
			name: "valid data type",
			entry: &Entry{
				Name:     "GetName",
				Category: CategoryDataType,
				Group:    GroupScript,
			},
			wantErr: nil,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantErr: ErrInvalidEntry,
		},
		{
			name: "empty name",
			entry: &Entry{
				Name:     "",
				Category: CategoryEffect,
			},
			wantErr: ErrEmptyName,
		},
		{
			name: "unknown category",
			entry: &Entry{
				Name:     "x",
				Category: Category("decision"),
			},
			wantErr: ErrInvalidCategory,
		},
		{
			name: "data type without group",
			entry: &Entry{
				Name:     "GetName",
				Category: CategoryDataType,
			},
			wantErr: ErrGroupRequired,
		},
		{
			name: "data type with unknown group",
			entry: &Entry{
				Name:     "GetName",
				Category: CategoryDataType,
				Group:    DataTypeGroup("frontend"),
			},
			wantErr: ErrInvalidDataTypeGroup,
		},
		{
			name: "group on non-data type",
			entry: &Entry{
				Name:     "tax_modifier",
				Category: CategoryModifier,
				Group:    GroupCommon,
			},
			wantErr: ErrUnexpectedGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntry(tt.entry)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateEntry() unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEntry() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("ValidateEntry() error = %v, want wrapped %v", err, ErrInvalidEntry)
			}
		})
	}
}
