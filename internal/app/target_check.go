package app

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/mmrzaf/dataz/internal/domain"
	"github.com/mmrzaf/dataz/internal/exec"
	"github.com/mmrzaf/dataz/internal/infra/targets/csv"
	"github.com/mmrzaf/dataz/internal/infra/targets/discard"
	"github.com/mmrzaf/dataz/internal/infra/targets/jsonl"
	"github.com/mmrzaf/dataz/internal/infra/targets/parquet"
	"github.com/mmrzaf/dataz/internal/infra/targets/postgres"
	"github.com/mmrzaf/dataz/internal/infra/targets/sqlite"
)

// BuildTarget returns the target for t. pageSize applies to parquet targets
// that do not set a page_size option.
func BuildTarget(t *domain.TargetConfig, pageSize int64) (exec.Target, error) {
	switch t.Kind {
	case domain.TargetKindCSV:
		return csv.NewCSVTarget(t.Path), nil
	case domain.TargetKindJSONL:
		return jsonl.NewJSONLTarget(t.Path), nil
	case domain.TargetKindParquet:
		if v := t.Options["page_size"]; v != "" {
			n, err := parseSize(v)
			if err != nil {
				return nil, fmt.Errorf("invalid page_size option: %w", err)
			}
			pageSize = n
		}
		return parquet.NewParquetTarget(t.Path, pageSize, t.Options["compression"])
	case domain.TargetKindSQLite:
		n, err := commitRows(t)
		if err != nil {
			return nil, err
		}
		return sqlite.NewSQLiteTarget(t.DSN).WithCommitRows(n), nil
	case domain.TargetKindPostgres:
		n, err := commitRows(t)
		if err != nil {
			return nil, err
		}
		return postgres.NewPostgresTarget(t.DSN, t.Schema).WithCommitRows(n), nil
	case domain.TargetKindDiscard:
		return discard.NewDiscardTarget(), nil
	default:
		return nil, fmt.Errorf("unsupported target kind: %s", t.Kind)
	}
}

// commitRows reads the commit_rows option. Zero means the target default.
func commitRows(t *domain.TargetConfig) (int, error) {
	v := t.Options["commit_rows"]
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid commit_rows option: %q", v)
	}
	return n, nil
}

// CheckTarget connects to t and reports latency and, for databases, the
// server version.
func (s *RunService) CheckTarget(t *domain.TargetConfig) (*domain.TargetCheck, error) {
	check := &domain.TargetCheck{
		TargetID:  t.ID,
		Kind:      t.Kind,
		CheckedAt: time.Now().UTC(),
	}

	if err := s.validator.ValidateTarget(t); err != nil {
		check.Error = err.Error()
		return check, err
	}

	start := time.Now()
	tgt, err := BuildTarget(t, s.pageSize)
	if err != nil {
		check.Error = err.Error()
		return check, err
	}
	if err := tgt.Connect(); err != nil {
		check.Error = err.Error()
		check.LatencyMS = time.Since(start).Milliseconds()
		return check, err
	}
	defer tgt.Close()

	check.OK = true
	check.LatencyMS = time.Since(start).Milliseconds()
	switch tgt := tgt.(type) {
	case *postgres.PostgresTarget:
		check.ServerVer, _ = queryServerVersion(tgt.DB(), "SHOW server_version")
	case *sqlite.SQLiteTarget:
		check.ServerVer, _ = queryServerVersion(tgt.DB(), "SELECT sqlite_version()")
	}
	return check, nil
}

func queryServerVersion(db *sql.DB, query string) (string, error) {
	var version string
	if err := db.QueryRow(query).Scan(&version); err != nil {
		return "", err
	}
	return version, nil
}
