// Package mcp exposes the collision analyzer as an MCP (Model Context
// Protocol) server over stdio.
//
// Two tools are registered:
//
//	analyze_index  # run the two-pass analysis on one index file
//	list_runs      # list saved runs from the history database
//
// Input validation failures from the loader are surfaced as tool errors
// carrying their taxonomy kind, so callers can distinguish a wrong-format
// capture from a missing file. Stdout is reserved for the protocol; startup
// logging goes to stderr.
package mcp
