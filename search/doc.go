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


// Package search provides keyword-gated semantic search over the recipe corpus.
//
// The Searcher type implements a multi-stage ranking algorithm:
//   - Required terms are extracted from the query (phrases and tokens,
//     stopwords filtered)
//   - Candidates are over-fetched from the vector index by embedding similarity
//   - Each candidate is scored by the fraction of required terms its text
//     contains, and candidates are ordered by (match ratio, match count,
//     similarity)
//   - Results are filled strict-matches-first, with a ratio floor on partial
//     matches so high-similarity zero-match records cannot pad the tail
//
// This keeps semantically-close but topically-wrong records (a beef dish for
// a "vegan" query) out of the result list.
package search
