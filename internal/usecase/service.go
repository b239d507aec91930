package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"svw.info/eggdrop/internal/domain"
	"svw.info/eggdrop/internal/evaluator"
	"svw.info/eggdrop/internal/hint"
	"svw.info/eggdrop/internal/infrastructure/metrics"
	"svw.info/eggdrop/internal/logging"
	"svw.info/eggdrop/internal/ports"
	"svw.info/eggdrop/internal/strategy"
)

// EvaluatorFunc builds an evaluator that reports every trial to onTrial.
type EvaluatorFunc func(onTrial evaluator.TrialFunc) ports.Evaluator

// NewEvaluator is the default EvaluatorFunc.
func NewEvaluator(onTrial evaluator.TrialFunc) ports.Evaluator {
	return evaluator.New(evaluator.WithTrialFunc(onTrial))
}

type Service struct {
	Strategies   []ports.Strategy
	Metrics      *metrics.Metrics
	Log          *logging.Logger
	NewEvaluator EvaluatorFunc
}

func NewService(strategies []ports.Strategy, m *metrics.Metrics, log *logging.Logger) *Service {
	if log == nil {
		log = logging.NewNop()
	}
	return &Service{Strategies: strategies, Metrics: m, Log: log, NewEvaluator: NewEvaluator}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Run evaluates every configured strategy in order.
func (u *Service) Run(ctx context.Context) ([]domain.Result, error) {
	if len(u.Strategies) == 0 {
		return nil, errNotConfigured
	}
	results := make([]domain.Result, 0, len(u.Strategies))
	for _, s := range u.Strategies {
		results = append(results, u.Evaluate(ctx, s))
	}
	return results, nil
}

// Evaluate finds the worst case of s. A strategy that answers wrong or runs
// out of items panics; nothing here recovers from that.
func (u *Service) Evaluate(ctx context.Context, s ports.Strategy) domain.Result {
	ctx = logging.WithStrategy(ctx, s.String())
	worst := u.trialEvaluator(ctx).FindWorstCase(s)
	if u.Metrics != nil {
		u.Metrics.RecordWorstCase(s.String(), worst)
	}
	u.Log.Info(ctx, "worst case found",
		zap.Int("threshold", worst.Threshold),
		zap.Int("probes", worst.Probes),
	)
	return domain.Result{Strategy: s.String(), Kind: s.Kind(), Worst: worst}
}

// Sweep returns the per-threshold cases of the configured strategy of kind.
func (u *Service) Sweep(ctx context.Context, kind domain.Kind) (ports.Strategy, []domain.Case, error) {
	s, err := u.Lookup(kind)
	if err != nil {
		return nil, nil, err
	}
	ctx = logging.WithStrategy(ctx, s.String())
	cases := u.trialEvaluator(ctx).Sweep(s)
	u.Log.Info(ctx, "sweep finished", zap.Int("trials", len(cases)))
	return s, cases, nil
}

// Lookup returns the configured strategy of kind.
func (u *Service) Lookup(kind domain.Kind) (ports.Strategy, error) {
	for _, s := range u.Strategies {
		if s.Kind() == kind {
			return s, nil
		}
	}
	return nil, fmt.Errorf("strategy %v: %w", kind, errNotConfigured)
}

// Suggest evaluates the advised parameters for the level domain and reports
// them next to their expected bound.
func (u *Service) Suggest(ctx context.Context) ([]domain.Result, error) {
	suggestions := hint.Suggest(domain.Levels)
	results := make([]domain.Result, 0, len(suggestions))
	for _, sg := range suggestions {
		s, err := strategy.Build(sg.Kind, sg.Params)
		if err != nil {
			return nil, fmt.Errorf("suggest %v: %w", sg.Kind, err)
		}
		r := u.Evaluate(ctx, s)
		r.Bound = sg.Bound
		if r.Worst.Probes > sg.Bound {
			u.Log.Warn(logging.WithStrategy(ctx, s.String()), "worst case exceeds expected bound",
				zap.Int("bound", sg.Bound),
				zap.Int("probes", r.Worst.Probes),
			)
		}
		u.Log.Debug(ctx, "suggestion", zap.String("reason", sg.Reason))
		results = append(results, r)
	}
	return results, nil
}

func (u *Service) trialEvaluator(ctx context.Context) ports.Evaluator {
	build := u.NewEvaluator
	if build == nil {
		build = NewEvaluator
	}
	return build(func(s ports.Strategy, c domain.Case) {
		if u.Metrics != nil {
			u.Metrics.RecordTrial(s.String(), c)
		}
		u.Log.Debug(ctx, "trial",
			zap.Int("threshold", c.Threshold),
			zap.Int("probes", c.Probes),
		)
	})
}
