package hashing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/mmrzaf/dataz/internal/domain"
)

// HashScenario hashes the fields of a scenario that determine its data.
// Descriptive fields are excluded, so renaming a scenario keeps its hash.
func HashScenario(scenario *domain.Scenario) (string, error) {
	data, err := json.Marshal(canonicalizeScenario(scenario))
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}

func canonicalizeScenario(scenario *domain.Scenario) map[string]any {
	result := map[string]any{
		"set": scenario.Set,
	}
	if p := scenario.Kvtd; p != nil {
		result["kvtd"] = map[string]any{
			"val_bytes":          p.ValBytes,
			"num_rows":           p.NumRows,
			"max_rows_per_batch": p.MaxRowsPerBatch,
		}
	}
	if p := scenario.Tpcc; p != nil {
		tp := map[string]any{"warehouses": p.Warehouses}
		if p.Now != "" {
			tp["now"] = p.Now
		}
		result["tpcc"] = tp
	}
	return result
}
