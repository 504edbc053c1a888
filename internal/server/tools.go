package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func nameProp() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Name of an open buffer (as given to raster_open or raster_new)",
	}
}

func colorProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"description": description,
		"oneOf": []interface{}{
			map[string]interface{}{
				"type":        "string",
				"description": "Hex color: #RGB, #RRGGBB or #RRGGBBAA",
			},
			map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255, "default": 0},
					"g": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255, "default": 0},
					"b": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255, "default": 0},
					"a": map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255, "default": 255},
				},
			},
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Buffer Lifecycle
		{
			Name:        "raster_open",
			Description: "Decode a PNG file into an editable buffer kept in memory under the given name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProp(),
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the PNG file",
					},
				},
				"required": []string{"name", "path"},
			},
		},
		{
			Name:        "raster_new",
			Description: "Create a blank buffer. Without a color the canvas is black (and transparent when it has alpha).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name":   nameProp(),
					"width":  map[string]interface{}{"type": "integer", "description": "Width in pixels"},
					"height": map[string]interface{}{"type": "integer", "description": "Height in pixels"},
					"alpha": map[string]interface{}{
						"type":        "boolean",
						"description": "Store an alpha channel (RGBA). Default true",
						"default":     true,
					},
					"color": colorProp("Optional background color"),
				},
				"required": []string{"name", "width", "height"},
			},
		},
		{
			Name:        "raster_info",
			Description: "Report the size and channel layout of an open buffer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProp(),
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "raster_save",
			Description: "Encode an open buffer as PNG and write it to disk. Defaults to the file it was opened from.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProp(),
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Output path. Optional when the buffer was opened from a file",
					},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "raster_close",
			Description: "Discard an open buffer and free its memory.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProp(),
				},
				"required": []string{"name"},
			},
		},

		// Pixel Operations
		{
			Name:        "raster_get_pixel",
			Description: "Get the color of one pixel. Buffers without alpha report alpha 255.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProp(),
					"x":    map[string]interface{}{"type": "integer", "description": "X coordinate (0-based, from left)"},
					"y":    map[string]interface{}{"type": "integer", "description": "Y coordinate (0-based, from top)"},
				},
				"required": []string{"name", "x", "y"},
			},
		},
		{
			Name:        "raster_set_pixel",
			Description: "Set the color of one pixel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name":  nameProp(),
					"x":     map[string]interface{}{"type": "integer", "description": "X coordinate (0-based, from left)"},
					"y":     map[string]interface{}{"type": "integer", "description": "Y coordinate (0-based, from top)"},
					"color": colorProp("Color to write"),
				},
				"required": []string{"name", "x", "y", "color"},
			},
		},
		{
			Name:        "raster_fill",
			Description: "Fill a rectangle with a solid color. The rectangle must lie inside the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name":   nameProp(),
					"x":      map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
					"y":      map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
					"width":  map[string]interface{}{"type": "integer", "description": "Rectangle width in pixels"},
					"height": map[string]interface{}{"type": "integer", "description": "Rectangle height in pixels"},
					"color":  colorProp("Fill color"),
				},
				"required": []string{"name", "x", "y", "width", "height", "color"},
			},
		},

		// Canvas Operations
		{
			Name:        "raster_crop",
			Description: "Keep only a rectangular region; the buffer shrinks to the region's size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name":   nameProp(),
					"x":      map[string]interface{}{"type": "integer", "description": "Left edge X coordinate (0-based)"},
					"y":      map[string]interface{}{"type": "integer", "description": "Top edge Y coordinate (0-based)"},
					"width":  map[string]interface{}{"type": "integer", "description": "Region width in pixels"},
					"height": map[string]interface{}{"type": "integer", "description": "Region height in pixels"},
				},
				"required": []string{"name", "x", "y", "width", "height"},
			},
		},
		{
			Name:        "raster_set_size",
			Description: "Change the canvas size without scaling. Growing pads the right and bottom with zero bytes; shrinking crops from the top-left.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name":   nameProp(),
					"width":  map[string]interface{}{"type": "integer", "description": "New width in pixels"},
					"height": map[string]interface{}{"type": "integer", "description": "New height in pixels"},
				},
				"required": []string{"name", "width", "height"},
			},
		},
		{
			Name:        "raster_insert",
			Description: "Paste one open buffer into another at an offset, overwriting pixels without blending.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProp(),
					"source": map[string]interface{}{
						"type":        "string",
						"description": "Name of the open buffer to paste",
					},
					"x": map[string]interface{}{"type": "integer", "description": "Destination left edge (default 0)", "default": 0},
					"y": map[string]interface{}{"type": "integer", "description": "Destination top edge (default 0)", "default": 0},
				},
				"required": []string{"name", "source"},
			},
		},
		{
			Name:        "raster_rotate",
			Description: "Rotate the whole canvas by 90 degrees. Width and height are swapped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": nameProp(),
					"direction": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"right", "left"},
						"description": "right = clockwise, left = counter-clockwise. Default right",
						"default":     "right",
					},
				},
				"required": []string{"name"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
