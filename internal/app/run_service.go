package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/docker/go-units"

	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/domain"
	"github.com/mmrzaf/dataz/internal/exec"
	"github.com/mmrzaf/dataz/internal/hashing"
	"github.com/mmrzaf/dataz/internal/infra/repos/runs"
	"github.com/mmrzaf/dataz/internal/infra/repos/scenarios"
	"github.com/mmrzaf/dataz/internal/infra/repos/targets"
	"github.com/mmrzaf/dataz/internal/infra/targets/digest"
	"github.com/mmrzaf/dataz/internal/infra/targets/discard"
	"github.com/mmrzaf/dataz/internal/logging"
	"github.com/mmrzaf/dataz/internal/registry"
	"github.com/mmrzaf/dataz/internal/validation"
)

type RunService struct {
	scenarioRepo scenarios.Repository
	targetRepo   *targets.FileRepository
	runRepo      runs.Repository
	sets         *registry.Registry
	validator    *validation.Validator
	logger       *logging.Logger
	workers      int
	pageSize     int64
	progress     exec.Progress
}

func NewRunService(
	scenarioRepo scenarios.Repository,
	targetRepo *targets.FileRepository,
	runRepo runs.Repository,
	sets *registry.Registry,
	logger *logging.Logger,
	workers int,
	pageSize int64,
) *RunService {
	return &RunService{
		scenarioRepo: scenarioRepo,
		targetRepo:   targetRepo,
		runRepo:      runRepo,
		sets:         sets,
		validator:    validation.NewValidator(sets),
		logger:       logger,
		workers:      max(workers, 1),
		pageSize:     pageSize,
	}
}

// WithProgress reports batch progress of every run to p.
func (s *RunService) WithProgress(p exec.Progress) *RunService {
	s.progress = p
	return s
}

// Plan is a resolved run request.
type Plan struct {
	Scenario  *domain.Scenario
	Target    *domain.TargetConfig
	Relations []dataset.Relation
	Workers   int
	Mode      string
}

// RelationNames returns the names of the planned relations in order.
func (p *Plan) RelationNames() []string {
	names := make([]string, len(p.Relations))
	for i, r := range p.Relations {
		names[i] = r.Name()
	}
	return names
}

// Plan validates req and resolves its scenario, target and relations.
func (s *RunService) Plan(req *domain.RunRequest) (*Plan, error) {
	if err := s.validator.ValidateRunRequest(req); err != nil {
		return nil, fmt.Errorf("invalid run request: %w", err)
	}

	scenario, err := s.resolveScenario(req.ScenarioID, req.Scenario)
	if err != nil {
		return nil, err
	}

	targetCfg := req.Target
	if req.TargetID != "" {
		targetCfg, err = s.targetRepo.Get(req.TargetID)
		if err != nil {
			return nil, fmt.Errorf("failed to load target: %w", err)
		}
	}
	targetCfg = resolveTargetForRun(targetCfg, req.TargetDatabase, req.OutPath)
	if err := s.validator.ValidateTarget(targetCfg); err != nil {
		return nil, fmt.Errorf("target validation failed: %w", err)
	}

	rels, err := s.relations(scenario, req.Relations)
	if err != nil {
		return nil, err
	}

	workers := req.Workers
	if workers == 0 {
		workers = s.workers
	}
	return &Plan{Scenario: scenario, Target: targetCfg, Relations: rels, Workers: workers, Mode: req.Mode}, nil
}

func (s *RunService) resolveScenario(id string, inline *domain.Scenario) (*domain.Scenario, error) {
	scenario := inline
	if id != "" {
		var err error
		scenario, err = s.scenarioRepo.Get(id)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario: %w", err)
		}
	}
	if scenario == nil {
		return nil, errors.New("either scenario_id or scenario must be provided")
	}
	if err := s.validator.ValidateScenario(scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return scenario, nil
}

// relations builds the scenario's set and keeps the named relations, in set
// order. No names means every relation.
func (s *RunService) relations(scenario *domain.Scenario, names []string) ([]dataset.Relation, error) {
	set, err := s.sets.Build(scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to build set: %w", err)
	}
	all := dataset.Relations(set)
	if len(names) == 0 {
		return all, nil
	}

	var out []dataset.Relation
	for _, r := range all {
		if slices.Contains(names, r.Name()) {
			out = append(out, r)
		}
	}
	for _, name := range names {
		if !slices.ContainsFunc(all, func(r dataset.Relation) bool { return r.Name() == name }) {
			avail := make([]string, len(all))
			for i, r := range all {
				avail[i] = r.Name()
			}
			return nil, fmt.Errorf("set %s has no relation %q (available: %s)", set.Name(), name, strings.Join(avail, ", "))
		}
	}
	return out, nil
}

// StartRun executes req and records it in the run history. The returned run
// carries the final status; a failed run is returned with its error.
func (s *RunService) StartRun(ctx context.Context, req *domain.RunRequest) (*domain.Run, error) {
	plan, err := s.Plan(req)
	if err != nil {
		return nil, err
	}

	configHash, err := hashing.HashRunConfig(plan.Scenario, plan.Target, plan.Mode, req.Relations)
	if err != nil {
		return nil, fmt.Errorf("failed to hash run config: %w", err)
	}

	run := &domain.Run{
		ScenarioID:      plan.Scenario.ID,
		ScenarioName:    plan.Scenario.Name,
		ScenarioVersion: plan.Scenario.Version,
		Set:             plan.Scenario.Set,
		TargetID:        plan.Target.ID,
		TargetName:      plan.Target.Name,
		TargetKind:      plan.Target.Kind,
		Workers:         plan.Workers,
		ConfigHash:      configHash,
		Status:          domain.RunStatusRunning,
		StartedAt:       time.Now(),
	}
	if err := s.runRepo.Create(run); err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}

	s.logger.Info("Starting run %s: scenario=%s, target=%s, relations=%d, workers=%d",
		run.ID, plan.Scenario.Name, plan.Target.Name, len(plan.Relations), plan.Workers)

	stats, err := s.execute(ctx, plan)
	if err != nil {
		s.logger.Error("Run %s failed: %v", run.ID, err)
		s.updateRunFailed(run, stats, err.Error())
		return run, err
	}

	now := time.Now()
	stats.DurationSeconds = now.Sub(run.StartedAt).Seconds()
	run.Stats, _ = json.Marshal(stats)
	run.Status = domain.RunStatusSuccess
	run.CompletedAt = &now
	if err := s.runRepo.Update(run); err != nil {
		s.logger.Error("Failed to update run %s: %v", run.ID, err)
	}

	s.logger.Info("Run %s completed: %d relations, %d total rows, %s, %.2fs",
		run.ID, stats.RelationsGenerated, stats.TotalRows, units.BytesSize(float64(stats.GoodBytes)), stats.DurationSeconds)
	return run, nil
}

func (s *RunService) execute(ctx context.Context, plan *Plan) (*domain.RunStats, error) {
	target, err := BuildTarget(plan.Target, s.pageSize)
	if err != nil {
		return nil, err
	}
	return s.executor(plan.Workers).Execute(ctx, plan.Relations, target, plan.Mode)
}

func (s *RunService) executor(workers int) *exec.Executor {
	ex := exec.NewExecutor(workers, s.logger)
	if s.progress != nil {
		ex.WithProgress(s.progress)
	}
	return ex
}

func (s *RunService) updateRunFailed(run *domain.Run, stats *domain.RunStats, errorMsg string) {
	now := time.Now()
	run.Status = domain.RunStatusFailed
	run.Error = errorMsg
	run.CompletedAt = &now
	if stats != nil {
		run.Stats, _ = json.Marshal(stats)
	}
	if err := s.runRepo.Update(run); err != nil {
		s.logger.Error("Failed to update run %s: %v", run.ID, err)
	}
}

// Bench generates the scenario into a discard target. Runs are not recorded.
func (s *RunService) Bench(ctx context.Context, scenarioID string, scenario *domain.Scenario, relations []string, workers int) (*domain.RunStats, error) {
	sc, err := s.resolveScenario(scenarioID, scenario)
	if err != nil {
		return nil, err
	}
	rels, err := s.relations(sc, relations)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = s.workers
	}
	return s.executor(workers).Execute(ctx, rels, discard.NewDiscardTarget(), domain.TableModeCreate)
}

// Digest hashes every selected relation of the scenario. The result does not
// depend on the worker count.
func (s *RunService) Digest(ctx context.Context, scenarioID string, scenario *domain.Scenario, relations []string, workers int) ([]digest.Result, error) {
	sc, err := s.resolveScenario(scenarioID, scenario)
	if err != nil {
		return nil, err
	}
	rels, err := s.relations(sc, relations)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = s.workers
	}
	tg := digest.NewDigestTarget()
	if _, err := s.executor(workers).Execute(ctx, rels, tg, domain.TableModeCreate); err != nil {
		return nil, err
	}
	return tg.Results(), nil
}

func (s *RunService) GetRun(id string) (*domain.Run, error) {
	return s.runRepo.Get(id)
}

func (s *RunService) ListRuns(limit int, status string) ([]*domain.Run, error) {
	return s.runRepo.List(limit, status)
}

func parseSize(v string) (int64, error) {
	n, err := units.RAMInBytes(v)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("size must be positive: %s", v)
	}
	return n, nil
}
