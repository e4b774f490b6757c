// Package commands defines the equiv CLI and wires dependencies for subcommands.
//
// Commands
//
//   - categories   List categories with their unit counts
//   - units        List the units of a category with their indices
//   - convert      Convert a value between two units of a category
//   - all          Convert a value into every other unit of a category
//   - resolve      Look up a unit by free-text name
//   - phrase       Convert between two free-text unit names
//   - rates        Show, and optionally refresh, the currency rates
//
// Exchange rates are cached in a local SQLite file so currency conversions
// keep working offline after the first successful fetch.
package commands
