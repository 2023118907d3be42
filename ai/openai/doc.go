// Package openai implements ai.Embedder against OpenAI-compatible
// embedding APIs. It works with the OpenAI API itself as well as local
// services that speak the same protocol (Ollama, LocalAI, vLLM).
//
// Every call is bounded by the configured ai.Config.Timeout.
package openai
