// Package storage provides JSON-based persistence for parse results.
//
// Each parsed source gets its own result file (parsed_SOURCE.json) under
// the data directory, holding a ParseResult envelope with the source name,
// parse timestamp, and the extracted records. The default location is
// ~/.local/share/agent-athens/.
package storage
