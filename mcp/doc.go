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


// Package mcp exposes the query engine over the Model Context Protocol
// using the mcp-go library (github.com/mark3labs/mcp-go).
//
// The server registers one tool per query operation (exact_lookup,
// fuzzy_search, search_by_category, search_by_scope, get_statistics, plus
// ping and server_info) and a read-only resource per collection. Tool
// results are JSON text; category listings served as resources are capped
// at the first hundred entries to keep responses bounded.
//
// The server is typically started as a subprocess by an MCP-capable agent
// and speaks JSON-RPC over stdin/stdout until EOF. Query validation
// failures are reported as per-call tool errors; they never terminate the
// server or disturb concurrent calls.
package mcp
