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


package corpus

import "errors"

var (
	// ErrMissingName indicates a list-shaped collection entry without a name field.
	ErrMissingName = errors.New("entry missing name")

	// ErrUnexpectedShape indicates a collection file that is neither a list nor a mapping.
	ErrUnexpectedShape = errors.New("collection must be a list or a mapping")

	// ErrLoaderClosed indicates the loader has been closed.
	ErrLoaderClosed = errors.New("loader is closed")
)

// LoadError reports a corpus file that could not be read or parsed.
// A LoadError is fatal: no snapshot is produced for the load that raised it.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return "corpus load: " + e.File + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
