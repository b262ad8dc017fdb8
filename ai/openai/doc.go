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


// Package openai provides an embedding implementation using OpenAI-compatible APIs.
//
// This package implements the ai.Embedder interface using the langchaingo
// library to communicate with OpenAI or OpenAI-compatible services (such as
// Ollama, LocalAI, or vLLM).
//
// Transport and API failures are wrapped in core.ErrEmbeddingUnavailable so
// callers can detect the condition with errors.Is and decide whether to
// degrade. The embedder itself never retries and never falls back.
//
// # Usage
//
//	config := ai.DefaultConfig()
//	// Or customize:
//	config := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"),  // /v1 added automatically
//	    ai.WithEmbeddingModel("embeddinggemma"),
//	)
//
//	embedder, err := openai.NewEmbedder(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	vector, err := embedder.EmbedText(ctx, "sample text")
package openai
