package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `labdesk exposes the reporting views of a research project hub.

Tools:
- activity_report: windowed activity timeline synthesized from project and
  task snapshots, filtered by search/kind/project and grouped by calendar day.
  Windows are 7, 14, 30, or 90 days.
- roster_report: the merged people roster (leads + participants, deduplicated
  by person and per-person project), filterable by search, department, and
  leads_only.
- export_report: any report view rendered as a CSV download payload
  (base64-free text, filename <report>-<YYYY-MM-DD>.csv).

All report views are computed from the current data snapshot on every call;
there is no cached state to invalidate.`

// Config contains server configuration.
type Config struct {
	Reports       ReportService
	Resolver      TenantResolver
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with the report tools.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "labdesk",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	// Stdio mode is local dev only; auth applies to HTTP.
	if cfg.TransportMode == "stdio" || !cfg.AuthEnabled {
		server.AddReceivingMiddleware(noAuthMiddleware("default"))
	} else {
		server.AddReceivingMiddleware(authMiddleware(cfg.Resolver))
	}

	registerTools(server, cfg.Reports)

	return server
}
