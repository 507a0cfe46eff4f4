package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mmrzaf/dataz/internal/domain"
	"github.com/mmrzaf/dataz/internal/kvtd"
	"github.com/mmrzaf/dataz/internal/registry"
	"github.com/mmrzaf/dataz/internal/tpcc"
)

type Validator struct {
	sets *registry.Registry
}

func NewValidator(sets *registry.Registry) *Validator {
	return &Validator{sets: sets}
}

// identifier validation: allow simple SQL identifiers only (prevents injection via table/column names).
var (
	identRe       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	relationRe    = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	idRe          = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)
	reservedWords = map[string]struct{}{
		"add": {}, "all": {}, "alter": {}, "and": {}, "any": {}, "as": {},
		"asc": {}, "between": {}, "by": {}, "case": {}, "check": {},
		"column": {}, "constraint": {}, "create": {}, "cross": {}, "current_date": {},
		"current_time": {}, "current_timestamp": {}, "database": {}, "default": {}, "delete": {},
		"desc": {}, "distinct": {}, "do": {}, "drop": {}, "else": {},
		"end": {}, "except": {}, "exists": {}, "false": {}, "for": {},
		"foreign": {}, "from": {}, "full": {}, "grant": {}, "group": {},
		"having": {}, "in": {}, "index": {}, "inner": {}, "insert": {},
		"intersect": {}, "into": {}, "is": {}, "join": {}, "key": {},
		"left": {}, "like": {}, "limit": {}, "natural": {}, "not": {},
		"null": {}, "offset": {}, "on": {}, "or": {}, "order": {},
		"outer": {}, "primary": {}, "references": {}, "returning": {}, "revoke": {},
		"right": {}, "schema": {}, "select": {}, "set": {}, "table": {},
		"then": {}, "to": {}, "true": {}, "truncate": {}, "union": {},
		"unique": {}, "update": {}, "user": {}, "using": {}, "values": {},
		"view": {}, "when": {}, "where": {}, "with": {},
	}
)

func IsValidIdentifier(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if !identRe.MatchString(s) {
		return false
	}
	if _, ok := reservedWords[strings.ToLower(s)]; ok {
		return false
	}
	return true
}

// IsValidRelationName accepts lowercase dash-separated relation names such
// as "order-line".
func IsValidRelationName(s string) bool {
	return relationRe.MatchString(s)
}

// IsValidID accepts file-safe record IDs.
func IsValidID(s string) bool {
	return idRe.MatchString(s) && !strings.Contains(s, "..")
}

func (v *Validator) ValidateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return errors.New("scenario name is required")
	}
	if scenario.ID != "" && !IsValidID(scenario.ID) {
		return fmt.Errorf("invalid scenario id: %s", scenario.ID)
	}
	if scenario.Set == "" {
		return errors.New("scenario set is required")
	}
	if _, err := v.sets.Get(scenario.Set); err != nil {
		return err
	}

	switch scenario.Set {
	case kvtd.Name:
		if scenario.Tpcc != nil {
			return errors.New("kvtd scenarios must not set tpcc params")
		}
		return validateKvtd(scenario.Kvtd)
	case tpcc.Name:
		if scenario.Kvtd != nil {
			return errors.New("tpcc scenarios must not set kvtd params")
		}
		return validateTpcc(scenario)
	}
	return nil
}

func validateKvtd(p *domain.KvtdParams) error {
	if p == nil {
		return errors.New("kvtd params are required")
	}
	var errs []error
	if p.ValBytes < 0 {
		errs = append(errs, fmt.Errorf("kvtd.val_bytes must be >= 0, got %d", p.ValBytes))
	}
	if p.NumRows < 0 {
		errs = append(errs, fmt.Errorf("kvtd.num_rows must be >= 0, got %d", p.NumRows))
	}
	if p.MaxRowsPerBatch < 0 || (p.NumRows > 0 && p.MaxRowsPerBatch == 0) {
		errs = append(errs, fmt.Errorf("kvtd.max_rows_per_batch must be > 0, got %d", p.MaxRowsPerBatch))
	}
	return errors.Join(errs...)
}

func validateTpcc(sc *domain.Scenario) error {
	if sc.Tpcc == nil {
		return errors.New("tpcc params are required")
	}
	if sc.Tpcc.Warehouses < 1 {
		return fmt.Errorf("tpcc.warehouses must be >= 1, got %d", sc.Tpcc.Warehouses)
	}
	if _, err := registry.TpccConfig(sc, time.Now()); err != nil {
		return err
	}
	return nil
}

func (v *Validator) ValidateTarget(t *domain.TargetConfig) error {
	if t.Name == "" {
		return errors.New("target name is required")
	}
	if t.ID != "" && !IsValidID(t.ID) {
		return fmt.Errorf("invalid target id: %s", t.ID)
	}
	if t.Kind == "" {
		return errors.New("target kind is required")
	}

	switch t.Kind {
	case domain.TargetKindCSV, domain.TargetKindJSONL, domain.TargetKindParquet:
		if t.Path == "" {
			return fmt.Errorf("%s targets require path", t.Kind)
		}
		if t.DSN != "" || t.Schema != "" {
			return fmt.Errorf("%s targets must not set dsn or schema", t.Kind)
		}
	case domain.TargetKindSQLite:
		if t.DSN == "" {
			return errors.New("target dsn is required")
		}
		if t.Schema != "" {
			return errors.New("sqlite targets must not set schema")
		}
	case domain.TargetKindPostgres:
		if t.DSN == "" {
			return errors.New("target dsn is required")
		}
		if t.Schema != "" && !IsValidIdentifier(t.Schema) {
			return fmt.Errorf("invalid target schema identifier: %s", t.Schema)
		}
	case domain.TargetKindDiscard:
	default:
		return fmt.Errorf("unsupported target kind: %s", t.Kind)
	}

	return nil
}

func (v *Validator) ValidateRunRequest(req *domain.RunRequest) error {
	hasScenarioID := req.ScenarioID != ""
	hasScenario := req.Scenario != nil

	if !hasScenarioID && !hasScenario {
		return errors.New("either scenario_id or scenario must be provided")
	}

	if hasScenarioID && hasScenario {
		return errors.New("only one of scenario_id or scenario must be provided")
	}

	hasTargetID := req.TargetID != ""
	hasTarget := req.Target != nil

	if !hasTargetID && !hasTarget {
		return errors.New("either target_id or target must be provided")
	}

	if hasTargetID && hasTarget {
		return errors.New("only one of target_id or target must be provided")
	}

	if req.Mode == "" {
		return errors.New("mode is required")
	}
	if !IsValidMode(req.Mode) {
		return fmt.Errorf("invalid mode: %s", req.Mode)
	}

	if req.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", req.Workers)
	}
	for _, name := range req.Relations {
		if !IsValidRelationName(name) {
			return fmt.Errorf("invalid relation name: %s", name)
		}
	}

	if req.Scenario != nil {
		if err := v.ValidateScenario(req.Scenario); err != nil {
			return fmt.Errorf("scenario validation failed: %w", err)
		}
	}

	if req.Target != nil {
		if err := v.ValidateTarget(req.Target); err != nil {
			return fmt.Errorf("target validation failed: %w", err)
		}
	}

	return nil
}

func IsValidMode(mode string) bool {
	switch mode {
	case domain.TableModeCreate, domain.TableModeTruncate, domain.TableModeAppend:
		return true
	default:
		return false
	}
}
