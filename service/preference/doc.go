// Package preference loads the ranked preference lists of a run.
//
// Two document formats are understood:
//
//   - csv/tsv: one row per person, the first cell is the person and the
//     remaining non-blank cells are items in decreasing preference;
//   - yaml: a mapping of person to a sequence of items.
//
// Documents are read through afs, so any supported URL (local path, file://,
// mem://, cloud storage) can be used.
package preference
