package app

import (
	"net/url"
	"strings"

	"github.com/mmrzaf/dataz/internal/domain"
)

// resolveTargetForRun applies per-run overrides to a copy of base.
func resolveTargetForRun(base *domain.TargetConfig, dbOverride, outOverride string) *domain.TargetConfig {
	if base == nil {
		return nil
	}
	t := *base
	switch {
	case t.Kind == domain.TargetKindPostgres:
		if dbOverride != "" {
			t.DSN = withPostgresDatabase(t.DSN, dbOverride)
		}
	case t.Kind == domain.TargetKindSQLite:
		if outOverride != "" {
			t.DSN = outOverride
		}
	case domain.IsFileKind(t.Kind):
		if outOverride != "" {
			t.Path = outOverride
		}
	}
	return &t
}

func withPostgresDatabase(dsn, database string) string {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return dsn
	}
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" && u.Host != "" {
		u.Path = "/" + database
		return u.String()
	}
	parts := strings.Fields(dsn)
	found := false
	for i := range parts {
		if strings.HasPrefix(strings.ToLower(parts[i]), "dbname=") {
			parts[i] = "dbname=" + database
			found = true
			break
		}
	}
	if !found {
		parts = append(parts, "dbname="+database)
	}
	return strings.Join(parts, " ")
}
