// Package stockman provides the functions and types behind a small
// stock-management helper. It is designed to be local-first and
// flat-file based: stock levels live in plain CSV files that users can
// edit, version and exchange freely.
//
// The core functionalities include:
//   - Consolidation: merging every CSV file of a directory into a
//     single ordered table of stock records.
//   - Search: exact column/value queries against a consolidated table,
//     with numeric comparison on numeric columns.
//   - Reporting: per-category aggregates (total quantity, average
//     price) written back out as a CSV report.
//
// This package serves as the foundational logic for the `smt`
// command-line tool; all operations are stateless functions from a
// directory or table to a table or report.
package stockman
