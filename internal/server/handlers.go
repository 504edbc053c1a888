package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/raster-tools-mcp/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "raster_open", "raster_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.debug {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": toJSONText(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Runs the raster operation under the buffer's session lock
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Buffer Lifecycle
	case "raster_open":
		return s.handleOpen(args)
	case "raster_new":
		return s.handleNew(args)
	case "raster_info":
		return s.handleInfo(args)
	case "raster_save":
		return s.handleSave(args)
	case "raster_close":
		return s.handleClose(args)

	// Pixel Operations
	case "raster_get_pixel":
		return s.handleGetPixel(args)
	case "raster_set_pixel":
		return s.handleSetPixel(args)
	case "raster_fill":
		return s.handleFill(args)

	// Canvas Operations
	case "raster_crop":
		return s.handleCrop(args)
	case "raster_set_size":
		return s.handleSetSize(args)
	case "raster_insert":
		return s.handleInsert(args)
	case "raster_rotate":
		return s.handleRotate(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// toJSONText renders v as indented JSON for a text content item. A value
// that cannot be marshaled renders as the empty string.
func toJSONText(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// BufferInfo describes an open buffer.
type BufferInfo struct {
	Name     string `json:"name"`
	Path     string `json:"path,omitempty"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Layout   string `json:"layout"`
	Channels int    `json:"channels"`
	HasAlpha bool   `json:"has_alpha"`
}

func describe(name, path string, b *raster.Buffer) *BufferInfo {
	return &BufferInfo{
		Name:     name,
		Path:     path,
		Width:    b.Width(),
		Height:   b.Height(),
		Layout:   b.Layout().String(),
		Channels: b.Layout().Channels(),
		HasAlpha: b.HasAlpha(),
	}
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// PixelResult reports one pixel in several notations.
type PixelResult struct {
	X    int          `json:"x"`
	Y    int          `json:"y"`
	Hex  string       `json:"hex"`
	RGBA raster.Color `json:"rgba"`
	HSL  HSLColor     `json:"hsl"`
}

func newPixelResult(x, y int, c raster.Color) *PixelResult {
	h, sat, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()
	return &PixelResult{
		X:    x,
		Y:    y,
		Hex:  c.Hex(),
		RGBA: c,
		HSL:  HSLColor{H: int(h), S: int(sat * 100), L: int(l * 100)},
	}
}

// colorObject is the structured color form. Missing r, g and b default to
// 0; a missing a defaults to 255.
type colorObject struct {
	R *int `json:"r"`
	G *int `json:"g"`
	B *int `json:"b"`
	A *int `json:"a"`
}

// parseColorArg accepts either a hex string or a colorObject.
func parseColorArg(raw json.RawMessage) (raster.Color, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return raster.Color{}, fmt.Errorf("%w: color is required", raster.ErrInvalidColor)
	}

	var hex string
	if err := json.Unmarshal(raw, &hex); err == nil {
		return raster.ParseColor(hex)
	}

	var obj colorObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return raster.Color{}, fmt.Errorf("%w: %s", raster.ErrInvalidColor, raw)
	}

	component := func(v *int, def uint8) (uint8, error) {
		if v == nil {
			return def, nil
		}
		if *v < 0 || *v > 255 {
			return 0, fmt.Errorf("%w: component %d outside 0-255", raster.ErrInvalidColor, *v)
		}
		return uint8(*v), nil
	}

	var c raster.Color
	var err error
	if c.R, err = component(obj.R, 0); err != nil {
		return raster.Color{}, err
	}
	if c.G, err = component(obj.G, 0); err != nil {
		return raster.Color{}, err
	}
	if c.B, err = component(obj.B, 0); err != nil {
		return raster.Color{}, err
	}
	if c.A, err = component(obj.A, 255); err != nil {
		return raster.Color{}, err
	}
	return c, nil
}

// update runs fn on the named buffer and reports its state afterwards.
func (s *Server) update(name string, fn func(*raster.Buffer) error) (*BufferInfo, error) {
	path, err := s.store.Path(name)
	if err != nil {
		return nil, err
	}
	var info *BufferInfo
	err = s.store.Update(name, func(b *raster.Buffer) error {
		if err := fn(b); err != nil {
			return err
		}
		info = describe(name, path, b)
		return nil
	})
	return info, err
}

// === Buffer Lifecycle Handlers ===

type openArgs struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func (s *Server) handleOpen(args json.RawMessage) (interface{}, error) {
	var a openArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Name == "" || a.Path == "" {
		return nil, errors.New("name and path are required")
	}
	if err := s.store.Open(a.Name, a.Path); err != nil {
		return nil, err
	}
	if s.debug {
		log.Printf("opened %s as %q", a.Path, a.Name)
	}
	return s.update(a.Name, func(*raster.Buffer) error { return nil })
}

type newArgs struct {
	Name   string          `json:"name"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Alpha  *bool           `json:"alpha"`
	Color  json.RawMessage `json:"color,omitempty"`
}

func (s *Server) handleNew(args json.RawMessage) (interface{}, error) {
	var a newArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Name == "" {
		return nil, errors.New("name is required")
	}
	layout := raster.RGBA
	if a.Alpha != nil && !*a.Alpha {
		layout = raster.RGB
	}

	b, err := raster.New(a.Width, a.Height, layout)
	if err != nil {
		return nil, err
	}
	if len(a.Color) > 0 {
		c, err := parseColorArg(a.Color)
		if err != nil {
			return nil, err
		}
		if a.Width > 0 && a.Height > 0 {
			if err := b.Fill(0, 0, a.Width, a.Height, c); err != nil {
				return nil, err
			}
		}
	}

	s.store.Put(a.Name, b)
	return describe(a.Name, "", b), nil
}

type nameArgs struct {
	Name string `json:"name"`
}

func (s *Server) handleInfo(args json.RawMessage) (interface{}, error) {
	var a nameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	path, err := s.store.Path(a.Name)
	if err != nil {
		return nil, err
	}
	var info *BufferInfo
	err = s.store.View(a.Name, func(b *raster.Buffer) error {
		info = describe(a.Name, path, b)
		return nil
	})
	return info, err
}

type saveArgs struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func (s *Server) handleSave(args json.RawMessage) (interface{}, error) {
	var a saveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		path, err := s.store.Path(a.Name)
		if err != nil {
			return nil, err
		}
		if path == "" {
			return nil, fmt.Errorf("buffer %s was not opened from a file; path is required", a.Name)
		}
		a.Path = path
	}

	var info *BufferInfo
	err := s.store.View(a.Name, func(b *raster.Buffer) error {
		if err := b.Save(a.Path, s.saveOpts...); err != nil {
			return err
		}
		info = describe(a.Name, a.Path, b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.debug {
		log.Printf("saved %q to %s", a.Name, a.Path)
	}
	return info, nil
}

func (s *Server) handleClose(args json.RawMessage) (interface{}, error) {
	var a nameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if _, err := s.store.Path(a.Name); err != nil {
		return nil, err
	}
	s.store.Evict(a.Name)
	return map[string]interface{}{"closed": a.Name}, nil
}

// === Pixel Operation Handlers ===

type pixelArgs struct {
	Name  string          `json:"name"`
	X     int             `json:"x"`
	Y     int             `json:"y"`
	Color json.RawMessage `json:"color,omitempty"`
}

func (s *Server) handleGetPixel(args json.RawMessage) (interface{}, error) {
	var a pixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	var result *PixelResult
	err := s.store.View(a.Name, func(b *raster.Buffer) error {
		c, err := b.Get(a.X, a.Y)
		if err != nil {
			return err
		}
		result = newPixelResult(a.X, a.Y, c)
		return nil
	})
	return result, err
}

func (s *Server) handleSetPixel(args json.RawMessage) (interface{}, error) {
	var a pixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColorArg(a.Color)
	if err != nil {
		return nil, err
	}
	var result *PixelResult
	err = s.store.Update(a.Name, func(b *raster.Buffer) error {
		if err := b.Set(a.X, a.Y, c); err != nil {
			return err
		}
		written, err := b.Get(a.X, a.Y)
		if err != nil {
			return err
		}
		result = newPixelResult(a.X, a.Y, written)
		return nil
	})
	return result, err
}

type regionArgs struct {
	Name   string          `json:"name"`
	X      int             `json:"x"`
	Y      int             `json:"y"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Color  json.RawMessage `json:"color,omitempty"`
}

func (s *Server) handleFill(args json.RawMessage) (interface{}, error) {
	var a regionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColorArg(a.Color)
	if err != nil {
		return nil, err
	}
	return s.update(a.Name, func(b *raster.Buffer) error {
		return b.Fill(a.X, a.Y, a.Width, a.Height, c)
	})
}

// === Canvas Operation Handlers ===

func (s *Server) handleCrop(args json.RawMessage) (interface{}, error) {
	var a regionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.update(a.Name, func(b *raster.Buffer) error {
		return b.Crop(a.X, a.Y, a.Width, a.Height)
	})
}

func (s *Server) handleSetSize(args json.RawMessage) (interface{}, error) {
	var a regionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.update(a.Name, func(b *raster.Buffer) error {
		return b.SetSize(a.Width, a.Height)
	})
}

type insertArgs struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

func (s *Server) handleInsert(args json.RawMessage) (interface{}, error) {
	var a insertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	// Snapshot the source first so no two buffer locks are ever held at once.
	var src *raster.Buffer
	err := s.store.View(a.Source, func(b *raster.Buffer) error {
		src = b.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.update(a.Name, func(b *raster.Buffer) error {
		return b.Insert(src, a.X, a.Y)
	})
}

type rotateArgs struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
}

func (s *Server) handleRotate(args json.RawMessage) (interface{}, error) {
	var a rotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Direction == "" {
		a.Direction = "right"
	}
	return s.update(a.Name, func(b *raster.Buffer) error {
		switch a.Direction {
		case "right":
			b.RotateRight()
		case "left":
			b.RotateLeft()
		default:
			return fmt.Errorf("unknown direction: %s", a.Direction)
		}
		return nil
	})
}
