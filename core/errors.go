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

import "errors"

// Retrieval error taxonomy
var (
	// ErrInvalidArgument indicates malformed caller input (k <= 0, empty
	// record set). Never retried; surfaced immediately.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexMismatch indicates the identifier list and the vector index
	// disagree in size. Fatal at load time: serving search traffic with a
	// mismatched pair returns silently-wrong results.
	ErrIndexMismatch = errors.New("identifier list and vector index size mismatch")

	// ErrSearchUnavailable indicates no index snapshot is loaded.
	ErrSearchUnavailable = errors.New("search index not loaded")

	// ErrEmbeddingUnavailable indicates the embedding service call failed.
	// Retry and fallback policy belong to the caller, not the engine.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
)

// Domain validation errors
var (
	// ErrInvalidRecipe indicates a Recipe failed validation.
	ErrInvalidRecipe = errors.New("invalid recipe")

	// ErrEmptyID indicates the Id field is empty.
	ErrEmptyID = errors.New("recipe id cannot be empty")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("recipe title cannot be empty")
)
