package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"raster_open",
		"raster_new",
		"raster_info",
		"raster_save",
		"raster_close",
		"raster_get_pixel",
		"raster_set_pixel",
		"raster_fill",
		"raster_crop",
		"raster_set_size",
		"raster_insert",
		"raster_rotate",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("Tool %s defined twice", tool.Name)
		}
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Fatal("Tool InputSchema is nil")
			}

			if schemaType := tool.InputSchema["type"]; schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}

			// Every required parameter must be described.
			required, _ := tool.InputSchema["required"].([]string)
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %s has no property", r)
				}
			}
		})
	}
}

func TestToolDefinitions_RequiredName(t *testing.T) {
	// Every tool addresses a buffer by name.
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			requiredList, ok := tool.InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}

			hasName := false
			for _, r := range requiredList {
				if r == "name" {
					hasName = true
					break
				}
			}
			if !hasName {
				t.Error("Tool should require 'name' parameter")
			}
		})
	}
}

func TestToolDefinitions_RegionCoordinates(t *testing.T) {
	for _, name := range []string{"raster_fill", "raster_crop"} {
		t.Run(name, func(t *testing.T) {
			var tool Tool
			for _, candidate := range GetToolDefinitions() {
				if candidate.Name == name {
					tool = candidate
					break
				}
			}
			if tool.Name == "" {
				t.Fatalf("%s not found", name)
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("properties should be a map")
			}
			for _, param := range []string{"x", "y", "width", "height"} {
				p, ok := props[param].(map[string]interface{})
				if !ok {
					t.Errorf("Missing %s parameter", param)
					continue
				}
				if p["type"] != "integer" {
					t.Errorf("%s type: got %v, want integer", param, p["type"])
				}
			}
		})
	}
}

func TestToolDefinitions_OptionalDefaults(t *testing.T) {
	toolDefaults := map[string]map[string]interface{}{
		"raster_new":    {"alpha": true},
		"raster_insert": {"x": 0, "y": 0},
		"raster_rotate": {"direction": "right"},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for toolName, expectedDefaults := range toolDefaults {
		tool, ok := toolMap[toolName]
		if !ok {
			t.Errorf("Tool %s not found", toolName)
			continue
		}

		props, ok := tool.InputSchema["properties"].(map[string]interface{})
		if !ok {
			t.Errorf("%s: properties should be a map", toolName)
			continue
		}

		for paramName, expectedDefault := range expectedDefaults {
			param, ok := props[paramName].(map[string]interface{})
			if !ok {
				t.Errorf("%s.%s: parameter not found or not a map", toolName, paramName)
				continue
			}

			actualDefault, ok := param["default"]
			if !ok {
				t.Errorf("%s.%s: missing default value", toolName, paramName)
				continue
			}
			if actualDefault != expectedDefault {
				t.Errorf("%s.%s: default got %v (%T), want %v (%T)",
					toolName, paramName, actualDefault, actualDefault, expectedDefault, expectedDefault)
			}
		}
	}
}

func TestToolDefinitions_RotateDirections(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		if tool.Name != "raster_rotate" {
			continue
		}
		props := tool.InputSchema["properties"].(map[string]interface{})
		direction := props["direction"].(map[string]interface{})
		enum, ok := direction["enum"].([]string)
		if !ok {
			t.Fatal("direction enum should be a string slice")
		}
		if len(enum) != 2 || enum[0] != "right" || enum[1] != "left" {
			t.Errorf("direction enum: got %v, want [right left]", enum)
		}
		return
	}
	t.Fatal("raster_rotate not found")
}

func TestHandleToolsList(t *testing.T) {
	s := New()
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
	}

	resp := s.handleToolsList(req)

	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}

	expected := GetToolDefinitions()
	if len(toolsList) != len(expected) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(expected))
	}
}
