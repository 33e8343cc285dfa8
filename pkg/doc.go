// Package pkg provides the core libraries for tidyviz visualizations.
//
// # Overview
//
// Tidyviz renders TidyTuesday datasets as digit-glyph charts and animated
// maps. Each year is drawn with its own four digits, and the digits
// themselves carry the data: emphasis marks the median, color carries the
// magnitude. The pkg directory is organized into four main areas:
//
//  1. [dataset] - Fetching and parsing the source CSVs
//  2. [stats] - Aggregation (yearly summaries, state densities)
//  3. [glyph] + [render] - Encoding and drawing (scenes, styles, sinks)
//  4. [pipeline] - Orchestration (load → aggregate → layout → render)
//
// # Architecture
//
// The typical data flow:
//
//	Dataset CSV
//	     ↓
//	[dataset] fetch + parse
//	     ↓
//	[stats] yearly summaries
//	     ↓
//	[glyph] per-digit styles
//	     ↓
//	[render] scene layout + SVG/PNG/GIF encoding
//
// Each stage is cached by content hash, so reruns with unchanged inputs
// reuse earlier work. The [pipeline] package wires the stages together;
// the supporting packages ([cache], [errors], [httputil], [observability],
// [buildinfo]) provide the shared infrastructure.
package pkg
