package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/mmrzaf/dataz/internal/domain"
)

type runConfigHashPayload struct {
	ScenarioHash string   `json:"scenario_hash"`
	TargetKind   string   `json:"target_kind"`
	TargetSchema string   `json:"target_schema,omitempty"`
	TargetDSN    string   `json:"target_dsn,omitempty"`
	TargetPath   string   `json:"target_path,omitempty"`
	Mode         string   `json:"mode"`
	Relations    []string `json:"relations"`
}

// HashRunConfig identifies what a run writes and where. Worker count is not
// part of it since output does not depend on it.
func HashRunConfig(scenario *domain.Scenario, target *domain.TargetConfig, mode string, relations []string) (string, error) {
	sh, err := HashScenario(scenario)
	if err != nil {
		return "", err
	}

	rels := append([]string{}, relations...)
	sort.Strings(rels)

	p := runConfigHashPayload{
		ScenarioHash: sh,
		TargetKind:   target.Kind,
		TargetSchema: target.Schema,
		TargetDSN:    target.DSN,
		TargetPath:   target.Path,
		Mode:         mode,
		Relations:    rels,
	}
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
