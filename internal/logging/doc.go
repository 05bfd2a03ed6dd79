// Package logging builds slog loggers with console and JSON handlers and
// provides standardized attribute helpers and context carriers.
//
// The console handler renders flattened key=value pairs with a leading
// component label; the JSON handler normalizes timestamp and level keys.
// Card and stage identities travel through context so every record emitted
// inside a card's pipeline carries its identity without plumbing extra
// arguments through each stage.
package logging
