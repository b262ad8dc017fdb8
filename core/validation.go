// Copyright 2025 Forkful Labs
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

import "fmt"

// ValidateRecipe validates a Recipe according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Title must not be empty
//
// NOT validated (populated by processors):
//   - Vector (can be empty until the embedding pipeline runs)
//   - InsertedAt/UpdatedAt (set by storage)
func ValidateRecipe(recipe *Recipe) error {
	if recipe == nil {
		return fmt.Errorf("%w: recipe is nil", ErrInvalidRecipe)
	}

	if recipe.Id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, ErrEmptyID)
	}

	if recipe.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, ErrEmptyTitle)
	}

	return nil
}
