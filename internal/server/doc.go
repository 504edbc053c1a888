// Package server implements the MCP (Model Context Protocol) server for raster editing tools.
//
// This package provides a JSON-RPC 2.0 server that exposes in-memory PNG editing
// through the MCP protocol. Images are decoded once into named buffers, edited by
// any number of tool calls, and written back to disk on request.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Buffer Lifecycle:
//   - raster_open: Decode a PNG file into a named buffer
//   - raster_new: Create a blank buffer
//   - raster_info: Report size and channel layout
//   - raster_save: Encode a buffer and write it to disk
//   - raster_close: Discard a buffer
//
// Pixel Operations:
//   - raster_get_pixel: Read one pixel
//   - raster_set_pixel: Write one pixel
//   - raster_fill: Fill a rectangle with a solid color
//
// Canvas Operations:
//   - raster_crop: Keep only a rectangular region
//   - raster_set_size: Pad or truncate the canvas
//   - raster_insert: Paste one buffer into another
//   - raster_rotate: Rotate by 90 degrees
//
// # Colors
//
// Tools that take a color accept either a hex string ("#RGB", "#RRGGBB",
// "#RRGGBBAA") or an object {"r", "g", "b", "a"}. Missing r, g or b default to
// 0 and a missing a defaults to 255.
//
// # Buffer Sessions
//
// Open buffers live in a session.Store for the lifetime of the server
// process. Calls on the same buffer are serialized; calls on different
// buffers may run concurrently.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
