package domain

import (
	"encoding/json"
	"time"
)

// Scenario names a dataset set and its parameters.
type Scenario struct {
	ID          string      `json:"id" yaml:"id" toml:"id"`
	Name        string      `json:"name" yaml:"name" toml:"name"`
	Version     string      `json:"version" yaml:"version" toml:"version"`
	Description string      `json:"description" yaml:"description" toml:"description"`
	Set         string      `json:"set" yaml:"set" toml:"set"`
	Kvtd        *KvtdParams `json:"kvtd,omitempty" yaml:"kvtd,omitempty" toml:"kvtd,omitempty"`
	Tpcc        *TpccParams `json:"tpcc,omitempty" yaml:"tpcc,omitempty" toml:"tpcc,omitempty"`
}

type KvtdParams struct {
	ValBytes        int `json:"val_bytes" yaml:"val_bytes" toml:"val_bytes"`
	NumRows         int `json:"num_rows" yaml:"num_rows" toml:"num_rows"`
	MaxRowsPerBatch int `json:"max_rows_per_batch" yaml:"max_rows_per_batch" toml:"max_rows_per_batch"`
}

type TpccParams struct {
	Warehouses int `json:"warehouses" yaml:"warehouses" toml:"warehouses"`
	// Now is an RFC3339 time, a relative offset such as "-1d", or empty for
	// the fixed reference timestamp.
	Now string `json:"now,omitempty" yaml:"now,omitempty" toml:"now,omitempty"`
}

type TargetConfig struct {
	ID      string            `json:"id" yaml:"id" toml:"id"`
	Name    string            `json:"name" yaml:"name" toml:"name"`
	Kind    string            `json:"kind" yaml:"kind" toml:"kind"`
	DSN     string            `json:"dsn,omitempty" yaml:"dsn,omitempty" toml:"dsn,omitempty"`
	Path    string            `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
	Schema  string            `json:"schema,omitempty" yaml:"schema,omitempty" toml:"schema,omitempty"`
	Options map[string]string `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
}

const (
	TargetKindCSV      = "csv"
	TargetKindJSONL    = "jsonl"
	TargetKindParquet  = "parquet"
	TargetKindSQLite   = "sqlite"
	TargetKindPostgres = "postgres"
	TargetKindDiscard  = "discard"
)

// IsFileKind reports whether targets of kind write files under Path.
func IsFileKind(kind string) bool {
	switch kind {
	case TargetKindCSV, TargetKindJSONL, TargetKindParquet:
		return true
	default:
		return false
	}
}

type Run struct {
	ID              string          `json:"id"`
	ScenarioID      string          `json:"scenario_id"`
	ScenarioName    string          `json:"scenario_name"`
	ScenarioVersion string          `json:"scenario_version"`
	Set             string          `json:"set"`
	TargetID        string          `json:"target_id"`
	TargetName      string          `json:"target_name"`
	TargetKind      string          `json:"target_kind"`
	Workers         int             `json:"workers"`
	ConfigHash      string          `json:"config_hash"`
	Status          RunStatus       `json:"status"`
	StartedAt       time.Time       `json:"started_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	Stats           json.RawMessage `json:"stats,omitempty"`
	Error           string          `json:"error,omitempty"`
}

type RunStatus string

const (
	RunStatusPending RunStatus = "pending"
	RunStatusRunning RunStatus = "running"
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"
)

type RunStats struct {
	RelationsGenerated int                `json:"relations_generated"`
	TotalRows          int64              `json:"total_rows"`
	TotalBatches       int64              `json:"total_batches"`
	GoodBytes          int64              `json:"good_bytes"`
	DurationSeconds    float64            `json:"duration_seconds"`
	RelationStats      []RelationRunStats `json:"relation_stats"`
}

type RelationRunStats struct {
	Relation        string  `json:"relation"`
	Batches         int64   `json:"batches"`
	RowsGenerated   int64   `json:"rows_generated"`
	GoodBytes       int64   `json:"good_bytes"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type RunRequest struct {
	ScenarioID string        `json:"scenario_id,omitempty"`
	Scenario   *Scenario     `json:"scenario,omitempty"`
	TargetID   string        `json:"target_id,omitempty"`
	Target     *TargetConfig `json:"target,omitempty"`
	// Relations restricts the run to the named relations. Empty means all.
	Relations []string `json:"relations,omitempty"`
	Workers   int      `json:"workers,omitempty"`
	Mode      string   `json:"mode,omitempty"`
	// TargetDatabase replaces the database of a postgres DSN.
	TargetDatabase string `json:"target_database,omitempty"`
	// OutPath replaces the path of file targets or the DSN of sqlite targets.
	OutPath string `json:"out_path,omitempty"`
}

type TargetCheck struct {
	TargetID  string    `json:"target_id"`
	Kind      string    `json:"kind"`
	OK        bool      `json:"ok"`
	Error     string    `json:"error,omitempty"`
	LatencyMS int64     `json:"latency_ms"`
	ServerVer string    `json:"server_version,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

const (
	TableModeCreate   = "create"
	TableModeTruncate = "truncate"
	TableModeAppend   = "append"
)
