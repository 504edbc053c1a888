// Package raster implements an in-memory editor over decoded 8-bit pixel
// buffers.
//
// A Buffer stores pixels in a flat row-major byte slice. Each pixel occupies
// Layout.Channels() consecutive bytes (3 for RGB, 4 for RGBA), so pixel
// (x, y) channel c lives at byte (y*width+x)*channels + c.
//
// # Coordinate System
//
// Coordinates are 0-based with (0,0) at the top-left corner. X grows to the
// right and Y grows downward. Regions are given as an offset plus a size and
// cover [x, x+width) × [y, y+height).
//
// # Mutation Model
//
// Operations that keep the shape of the image (Set, Fill) write in place.
// Operations that change it (Crop, SetSize, RotateRight, RotateLeft) and
// Insert build a replacement buffer and swap it in only when complete, so a
// failed call leaves the Buffer unchanged. All validation happens before the
// first byte is written.
//
// # Thread Safety
//
// A Buffer has no internal locking. It belongs to a single caller; share it
// between goroutines only behind caller-side synchronization such as
// session.Store.
package raster
