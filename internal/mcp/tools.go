package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dshills/scipdup/internal/selector"
	"github.com/dshills/scipdup/internal/storage"
	"github.com/dshills/scipdup/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeInvalidInput  = -32001 // Input file failed validation
)

// handleAnalyzeIndex handles the analyze_index tool invocation
func (s *Server) handleAnalyzeIndex(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Extract and validate parameters
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}

	if err := validatePath(path); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	}

	// Parse optional parameters
	allSymbols, _ := args["all_symbols"].(bool)
	save, _ := args["save"].(bool)
	patterns := getStringSlice(args, "patterns")

	filter := selector.DefaultFilter()
	filter.FunctionsOnly = !allSymbols
	if len(patterns) > 0 {
		filter.Patterns = patterns
	}

	// Run analysis
	report, err := s.analyzer.AnalyzeFile(ctx, path, filter)
	if err != nil {
		if ie, ok := types.AsInputError(err); ok {
			return nil, newMCPError(ErrorCodeInvalidInput, ie.Message, map[string]interface{}{
				"kind": string(ie.Kind),
			})
		}
		return nil, newMCPError(ErrorCodeInternalError, "analysis failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := formatReport(report)

	// Persist if requested
	if save {
		run, err := s.storage.SaveReport(ctx, report, storage.FilterRecord{
			Patterns:      filter.Patterns,
			FunctionsOnly: filter.FunctionsOnly,
		})
		if err != nil {
			return nil, newMCPError(ErrorCodeInternalError, "failed to save report", map[string]interface{}{
				"error": err.Error(),
			})
		}
		response["run_id"] = run.ID
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListRuns handles the list_runs tool invocation
func (s *Server) handleListRuns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path := getStringDefault(args, "path", "")
	limit := getIntDefault(args, "limit", 20)
	if limit < 1 || limit > 200 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 200", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	runs, err := s.storage.ListRuns(ctx, path, limit)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to list runs", map[string]interface{}{
			"error": err.Error(),
		})
	}

	entries := make([]map[string]interface{}, 0, len(runs))
	for _, run := range runs {
		entries = append(entries, map[string]interface{}{
			"run_id":          run.ID,
			"file_path":       run.FilePath,
			"patterns":        run.Patterns,
			"functions_only":  run.FunctionsOnly,
			"unique_count":    run.UniqueCount,
			"collision_count": run.CollisionCount,
			"created_at":      run.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	response := map[string]interface{}{
		"runs":  entries,
		"count": len(entries),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// formatReport renders a report as the tool response payload
func formatReport(report *types.Report) map[string]interface{} {
	findings := make([]map[string]interface{}, 0, len(report.Findings))
	for i := range report.Findings {
		f := &report.Findings[i]
		findings = append(findings, map[string]interface{}{
			"symbol":     string(f.Symbol),
			"first_line": f.FirstLine(),
			"lines":      f.Lines,
			"collision":  f.IsCollision(),
		})
	}

	return map[string]interface{}{
		"path":            report.Path,
		"patterns":        report.Patterns,
		"findings":        findings,
		"unique_count":    report.UniqueCount(),
		"collision_count": report.CollisionCount(),
	}
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// validatePath checks if a path is absolute and names a regular file. Format
// validation of the file contents is the loader's job.
func validatePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}

	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}

	if info.IsDir() {
		return ErrPathIsDirectory
	}

	return nil
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}

// getStringSlice extracts a string-array parameter
func getStringSlice(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Validation helpers

var (
	ErrPathRequired    = errors.New("path is required")
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrPathIsDirectory = errors.New("path is a directory, expected a JSON index file")
)
