// Package bookmarker provides a personal bookmarking and note-taking tool.
// It saves links from shared text, extracts readable content and metadata
// from arbitrary web pages (YouTube, Reddit, X, Instagram, generic HTML),
// optionally summarizes saved items with an LLM call, stores everything in
// a local database, and mirrors records to a per-user cloud document store
// for cross-device sync.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, postgres/, gemini/).
package bookmarker
