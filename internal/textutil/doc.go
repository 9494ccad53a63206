// Package textutil provides the text processing helpers used by the
// enrichment pipeline.
//
// The primary use cases are:
//   - Stripping markdown code fences from generative-model output
//   - Flattening HTML fragments to plain text (tags dropped, <br> to
//     newline, a small fixed set of entities decoded)
//   - Legacy query-string encoding for search terms
//
// All helpers are single-pass scans over the input and allocate at most
// one output buffer.
package textutil
