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


package storage

import (
	"github.com/forkful/recipedex/core"
)

// MarshalRecipe serializes a Recipe to bytes.
func MarshalRecipe(recipe *core.Recipe) []byte {
	buf := make([]byte, core.RecipeMUS.Size(*recipe))
	core.RecipeMUS.Marshal(*recipe, buf)
	return buf
}

// UnmarshalRecipe deserializes a Recipe from bytes.
func UnmarshalRecipe(data []byte) (*core.Recipe, error) {
	recipe, _, err := core.RecipeMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}
