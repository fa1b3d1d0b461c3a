// Package cli implements the interactive console: a REPL dispatching to
// form-style commands that drive the data-synchronization layer. All
// input validation happens here, before anything touches the network.
package cli
