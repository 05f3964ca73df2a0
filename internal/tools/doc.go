// Package tools implements the MCP tools exposed by the enfgen server.
// Each tool is a small struct with a Definition describing its schema and
// a Handle method invoked per request. Tools return domain failures as
// tool results so clients see the message; only internal faults surface
// as protocol errors.
package tools
