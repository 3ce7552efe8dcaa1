// Package narrate renders solver moves as human-readable instructions.
//
// What
//
//   - Describe: one move → one imperative sentence.
//   - Lines: a whole Solution → numbered instructions under stage headings.
//   - Export: Lines written to an io.Writer, one per line, for the flat
//     text file the surrounding application saves.
//
// Determinism
//
//	Pure string formatting; identical input gives identical output.
//
// Errors
//
//	Only I/O errors from the writer, returned unwrapped from Export.
package narrate
