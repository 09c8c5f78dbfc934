// Package bookstore provides the types and functions to manage the stock of
// a small bookstore. The inventory is kept in a single CSV file that the
// operator can open and fix in any spreadsheet, it is the only source of
// truth between runs.
//
// The core functionalities include:
//   - Inventory Management: loading the CSV file into an Inventory, adding
//     books, adjusting the stock of a title and saving the whole file back.
//   - Numeric Coercion: every Cost and Stock cell is parsed into a Number that
//     is either a decimal value or invalid, so malformed cells survive a
//     round-trip but never poison an aggregate.
//   - Reporting: stateless functions computing listings, a financial summary,
//     genre tallies and an author ordering from an Inventory.
//
// This package serves as the foundational logic for the `bks` command-line
// tool.
package bookstore
