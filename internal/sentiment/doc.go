// Package sentiment implements review sentiment aggregation and exemplar
// selection over classified review verdicts.
//
// Summarize and ExemplarIndices are pure functions over one immutable
// verdict slice; they hold no state between calls. The Analyzer wires them
// to the external classifier and catalog capabilities and owns the
// boundary concerns: caching, request deduplication, history recording.
package sentiment
