package scenarios

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mmrzaf/dataz/internal/domain"
	"gopkg.in/yaml.v3"
)

type Repository interface {
	List() ([]*domain.Scenario, error)
	Get(id string) (*domain.Scenario, error)
	GetByPath(path string) (*domain.Scenario, error)
	Save(sc *domain.Scenario) (string, error)
}

type FileRepository struct {
	baseDir string
}

var _ Repository = (*FileRepository)(nil)

func NewFileRepository(baseDir string) *FileRepository {
	return &FileRepository{baseDir: baseDir}
}

func isScenarioFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".json", ".toml":
		return true
	default:
		return false
	}
}

// List returns every parseable scenario in the base directory, sorted by ID.
// Unparseable files are skipped.
func (r *FileRepository) List() ([]*domain.Scenario, error) {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*domain.Scenario{}, nil
		}
		return nil, err
	}

	scenarios := make([]*domain.Scenario, 0)
	for _, entry := range entries {
		if entry.IsDir() || !isScenarioFile(entry.Name()) {
			continue
		}
		scenario, err := r.loadScenario(filepath.Join(r.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		scenarios = append(scenarios, scenario)
	}
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].ID < scenarios[j].ID })

	return scenarios, nil
}

func (r *FileRepository) Get(id string) (*domain.Scenario, error) {
	scenarios, err := r.List()
	if err != nil {
		return nil, err
	}

	for _, s := range scenarios {
		if s.ID == id || s.Name == id {
			return s, nil
		}
	}

	return nil, fmt.Errorf("scenario not found: %s", id)
}

// GetByPath loads a scenario file. Relative paths resolve against the base
// directory and the result must stay inside it.
func (r *FileRepository) GetByPath(path string) (*domain.Scenario, error) {
	resolved, err := r.resolve(path)
	if err != nil {
		return nil, err
	}
	return r.loadScenario(resolved)
}

// Save writes sc as YAML named after its ID and returns the file path.
func (r *FileRepository) Save(sc *domain.Scenario) (string, error) {
	if sc.ID == "" {
		return "", errors.New("scenario id is required")
	}
	path, err := r.resolve(sc.ID + ".yaml")
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(sc)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.baseDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (r *FileRepository) resolve(path string) (string, error) {
	base, err := filepath.Abs(r.baseDir)
	if err != nil {
		return "", err
	}
	p := path
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	p = filepath.Clean(p)
	rel, err := filepath.Rel(base, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("scenario path escapes %s: %s", r.baseDir, path)
	}
	return p, nil
}

func (r *FileRepository) loadScenario(path string) (*domain.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario domain.Scenario
	switch filepath.Ext(path) {
	case ".json":
		err = json.Unmarshal(data, &scenario)
	case ".toml":
		_, err = toml.Decode(string(data), &scenario)
	default:
		err = yaml.Unmarshal(data, &scenario)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if scenario.ID == "" {
		scenario.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &scenario, nil
}
