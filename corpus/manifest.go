package corpus

import "github.com/halcyonforge/eu5ref/core"

// collectionFile maps one corpus JSON file to the category it feeds.
type collectionFile struct {
	Name     string
	Category core.Category
	Group    core.DataTypeGroup // set only for data_type files
}

// manifest is the fixed set of collection files a corpus directory may
// contain. The set is known at build time and never discovered dynamically.
// Every file is optional: a missing file yields an empty collection.
var manifest = []collectionFile{
	{Name: "modifiers.json", Category: core.CategoryModifier},
	{Name: "effects.json", Category: core.CategoryEffect},
	{Name: "triggers.json", Category: core.CategoryTrigger},
	{Name: "event_targets.json", Category: core.CategoryEventTarget},
	{Name: "data_types_common.json", Category: core.CategoryDataType, Group: core.GroupCommon},
	{Name: "data_types_gui.json", Category: core.CategoryDataType, Group: core.GroupGUI},
	{Name: "data_types_internalclausewitzgui.json", Category: core.CategoryDataType, Group: core.GroupInternalClausewitzGUI},
	{Name: "data_types_script.json", Category: core.CategoryDataType, Group: core.GroupScript},
	{Name: "data_types_uncategorized.json", Category: core.CategoryDataType, Group: core.GroupUncategorized},
}
