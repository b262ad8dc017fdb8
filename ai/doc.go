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


// Package ai provides abstractions for the embedding services used in
// Recipedex.
//
// The core domain and the search engine depend on the Embedder interface
// rather than on a concrete client, so embedding backends can be swapped
// without touching business logic.
//
// # Implementation Packages
//
//   - ai/openai: production implementation using OpenAI-compatible APIs
//   - ai/mock: test doubles for unit testing without external services
//
// # Constructor Return Type Pattern
//
// The production constructor (openai.NewEmbedder) returns the ai.Embedder
// INTERFACE to enforce abstraction. The test constructor
// (mock.NewMockEmbedder) returns the CONCRETE type so tests can inject
// behavior and assert on call counts.
//
//	embedder, err := openai.NewEmbedder(config)  // returns ai.Embedder
//
//	mockEmbed := mock.NewMockEmbedder()          // returns *mock.MockEmbedder
//	mockEmbed.EmbedTextFunc = ...                // needs concrete type
//	count := mockEmbed.CallCount()               // test assertion
//
// # Usage Example
//
//	config := ai.DefaultConfig()
//	embedder, err := openai.NewEmbedder(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	vector, err := embedder.EmbedText(ctx, "thai green curry")
package ai
