package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// analyzeIndexTool returns the tool definition for analyze_index
func analyzeIndexTool() mcp.Tool {
	return mcp.Tool{
		Name:        "analyze_index",
		Description: "Analyze a SCIP JSON index file for impl symbol collisions",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to a SCIP index converted to JSON (scip print --json)",
				},
				"patterns": map[string]interface{}{
					"type":        "array",
					"description": "Case-insensitive substrings to match in symbol names (default: neg, mul)",
					"items": map[string]interface{}{
						"type": "string",
					},
				},
				"all_symbols": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, include non-function symbols instead of only those ending in '().'",
					"default":     false,
				},
				"save": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, persist the report to the run history database",
					"default":     false,
				},
			},
			Required: []string{"path"},
		},
	}
}

// listRunsTool returns the tool definition for list_runs
func listRunsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_runs",
		Description: "List saved analysis runs, newest first",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Only list runs for this input file path",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of runs to return (1-200)",
					"default":     20,
					"minimum":     1,
					"maximum":     200,
				},
			},
		},
	}
}
