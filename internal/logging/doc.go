// Package logging provides logging utilities for wgstart.
//
// Two kinds of output:
//   - Debug logging: structured logs via slog, on stderr by default
//   - User output: short status lines for the operator
//
// # Debug Logging
//
//	logging.Debug("selected peer", "id", peer.ID)
//	logging.Warn("config finding", "field", f.Field, "problem", f.Problem)
//
// # User Output
//
//	logging.UserInfo("Launching %s", binary)
//	logging.UserWarning("Only the first of %d peers is used", n)
//
// UserInfo and UserSuccess write to stdout, UserWarning and UserError to
// stderr. SetOutput redirects both, which commands use to honour cobra's
// configured writers.
package logging
