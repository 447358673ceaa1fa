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

import "errors"

// Domain validation errors
var (
	// ErrInvalidEntry indicates an Entry failed validation.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("entry name cannot be empty")

	// ErrInvalidCategory indicates a value is not one of the five categories.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidDataTypeGroup indicates a value is not a known data type group.
	ErrInvalidDataTypeGroup = errors.New("invalid data type group")

	// ErrUnexpectedGroup indicates a group was set on a non-data_type entry.
	ErrUnexpectedGroup = errors.New("group is only valid for data_type entries")

	// ErrGroupRequired indicates a data_type entry is missing its group.
	ErrGroupRequired = errors.New("data_type entries require a group")
)
