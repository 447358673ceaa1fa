package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a stable identifier for corpus entries.
// It is derived from entry content, so identical corpora produce identical IDs
// across loads and processes.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Category is the top-level classification of a corpus entry.
type Category string

const (
	// CategoryModifier represents game modifiers.
	CategoryModifier Category = "modifier"
	// CategoryEffect represents scripted effects.
	CategoryEffect Category = "effect"
	// CategoryTrigger represents trigger conditions.
	CategoryTrigger Category = "trigger"
	// CategoryEventTarget represents event targets.
	CategoryEventTarget Category = "event_target"
	// CategoryDataType represents typed data-type descriptors, subdivided by DataTypeGroup.
	CategoryDataType Category = "data_type"
)

// Categories returns all valid categories in corpus order.
func Categories() []Category {
	return []Category{
		CategoryModifier,
		CategoryEffect,
		CategoryTrigger,
		CategoryEventTarget,
		CategoryDataType,
	}
}

// DataTypeGroup subdivides the DataType category.
type DataTypeGroup string

const (
	GroupCommon                DataTypeGroup = "common"
	GroupGUI                   DataTypeGroup = "gui"
	GroupInternalClausewitzGUI DataTypeGroup = "internalclausewitzgui"
	GroupScript                DataTypeGroup = "script"
	GroupUncategorized         DataTypeGroup = "uncategorized"
)

// DataTypeGroups returns all valid data type groups in corpus order.
func DataTypeGroups() []DataTypeGroup {
	return []DataTypeGroup{
		GroupCommon,
		GroupGUI,
		GroupInternalClausewitzGUI,
		GroupScript,
		GroupUncategorized,
	}
}

// Entry is one record from the reference corpus: a modifier, effect, trigger,
// event target, or data-type descriptor. Attributes carry the source metadata
// verbatim; the engine never interprets them.
type Entry struct {
	Id         ID             `json:"id"`
	Name       string         `json:"name"`
	Category   Category       `json:"category"`
	Group      DataTypeGroup  `json:"group,omitempty"` // set only for data_type entries
	Scope      string         `json:"scope,omitempty"` // game context tag, e.g. "country"
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Key returns a string representation of the entry as "(category,name)".
// This is used for generating deterministic IDs.
func (e *Entry) Key() string {
	return "(" + string(e.Category) + "," + e.Name + ")"
}

// Description returns the entry's description attribute, or "" when the
// source metadata carries none.
func (e *Entry) Description() string {
	desc, _ := e.Attributes["description"].(string)
	return desc
}
