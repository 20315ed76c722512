package model

// DiagnosticsReport is the payload returned by the store diagnostics probe.
// Each field is populated independently so a failing sub-check degrades only
// its own status string.
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
