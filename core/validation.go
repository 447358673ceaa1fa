// Copyright 2025 Halcyon Forge
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"fmt"
	"strings"
)

// canonical folds an enum spelling to a comparable form: lowercased with
// underscores removed, so "DataType", "datatype" and "data_type" all match.
func canonical(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "")
}

// ParseCategory resolves a category name case-insensitively.
// Both "event_target" and "EventTarget" spellings are accepted.
func ParseCategory(s string) (Category, error) {
	c := canonical(s)
	for _, cat := range Categories() {
		if c == canonical(string(cat)) {
			return cat, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// ParseDataTypeGroup resolves a data type group name case-insensitively.
func ParseDataTypeGroup(s string) (DataTypeGroup, error) {
	c := canonical(s)
	for _, group := range DataTypeGroups() {
		if c == canonical(string(group)) {
			return group, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDataTypeGroup, s)
}

// ValidateEntry validates an Entry according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Category must be one of the five enumerated values
//   - Group must be set if and only if Category is data_type
//
// NOT validated:
//   - Scope (optional free-form tag)
//   - Attributes (opaque source metadata)
//   - ID (recomputable from Key at any time)
func ValidateEntry(entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if entry.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyName)
	}

	if _, err := ParseCategory(string(entry.Category)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	if entry.Category == CategoryDataType {
		if entry.Group == "" {
			return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrGroupRequired)
		}
		if _, err := ParseDataTypeGroup(string(entry.Group)); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
		}
	} else if entry.Group != "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrUnexpectedGroup)
	}

	return nil
}
