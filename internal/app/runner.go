package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samvad-hq/samvad-json-client/internal/config"
	"github.com/samvad-hq/samvad-json-client/internal/domain"
	"github.com/samvad-hq/samvad-json-client/internal/history"
	"github.com/samvad-hq/samvad-json-client/internal/logger"
	"github.com/samvad-hq/samvad-json-client/pkg/endpoints"
	"github.com/samvad-hq/samvad-json-client/pkg/httpclient"
	"github.com/samvad-hq/samvad-json-client/pkg/jsonapi"
	"github.com/samvad-hq/samvad-json-client/pkg/notify"
)

// Runner wires together the endpoint registry, the JSON API caller, call
// history, and failure notifiers, and executes call passes.
type Runner struct {
	cfg      *config.Config
	registry *endpoints.Registry
	client   *jsonapi.Client
	fanout   *notify.Fanout
	store    history.Store
	interval time.Duration
	log      logger.Logger
}

// NewRunner builds a runner runtime from config files.
func NewRunner(ctx context.Context, cfg *config.Config, log logger.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	registry, err := endpoints.Load(cfg.EndpointsFile)
	if err != nil {
		return nil, fmt.Errorf("load endpoints registry: %w", err)
	}
	log.InfoObj("endpoints registry loaded", "endpoints", registry.All())

	var fanout *notify.Fanout
	if cfg.NotifiersFile != "" {
		notifierReg, err := notify.LoadRegistry(cfg.NotifiersFile)
		if err != nil {
			return nil, fmt.Errorf("load notifiers registry: %w", err)
		}

		enabled := notifierReg.Enabled()
		notifiers, err := notify.BuildAll(ctx, notify.DefaultRegistry(), enabled, log)
		if err != nil {
			return nil, fmt.Errorf("build notifiers: %w", err)
		}
		fanout = notify.NewFanout(notifiers)
		log.InfoObj("notifiers registry loaded", "notifiers", enabled)
	}

	store, err := history.NewStore(cfg.StorageType, cfg.BBoltPath, history.Options{
		RecordTTL:       cfg.HistoryTTL,
		CleanupInterval: cfg.HistoryCleanupInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}

	return &Runner{
		cfg:      cfg,
		registry: registry,
		client:   jsonapi.NewClient(httpclient.NewRestyDoer()),
		fanout:   fanout,
		store:    store,
		interval: cfg.CallInterval,
		log:      log,
	}, nil
}

// Close releases the history store.
func (r *Runner) Close() error {
	if r == nil || r.store == nil {
		return nil
	}
	return r.store.Close()
}

// Run executes call passes until the context is cancelled. A zero interval
// runs a single pass and returns.
func (r *Runner) Run(ctx context.Context) error {
	if r == nil || r.client == nil {
		return fmt.Errorf("runner is not initialized")
	}

	eps := r.registry.All()
	if len(eps) == 0 {
		r.log.WarnObj("no endpoints configured; runner idle", "endpoints_file", r.cfg.EndpointsFile)
		return nil
	}

	r.log.InfoObj("runner starting", "runner_state", map[string]any{
		"endpoints_count": len(eps),
		"notifiers_count": r.fanout.Size(),
		"call_interval":   r.interval.String(),
	})

	if err := r.runOnce(ctx, eps); err != nil {
		return fmt.Errorf("initial pass: %w", err)
	}
	if r.interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.InfoObj("runner loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := r.runOnce(ctx, eps); err != nil {
				r.log.ErrorObj("scheduled pass failed", "error", err)
			}
		}
	}
}

// runOnce calls every endpoint once. Call failures are recorded and notified,
// not returned; only infrastructure errors propagate.
func (r *Runner) runOnce(ctx context.Context, eps []endpoints.Endpoint) error {
	start := time.Now()
	r.log.InfoObj("call pass started", "pass_meta", map[string]any{
		"endpoints_count": len(eps),
		"started_at":      start.UTC(),
	})

	var errs []error
	for _, ep := range eps {
		if err := r.callEndpoint(ctx, ep); err != nil {
			errs = append(errs, fmt.Errorf("endpoint %s: %w", ep.ID, err))
		}
	}

	r.log.InfoObj("call pass completed", "pass_meta", map[string]any{
		"endpoints_count": len(eps),
		"elapsed_ms":      time.Since(start).Milliseconds(),
	})
	return errors.Join(errs...)
}

func (r *Runner) callEndpoint(ctx context.Context, ep endpoints.Endpoint) error {
	start := time.Now()
	result, err := r.client.Call(ctx, ep.Request())

	outcome := domain.Outcome{
		EndpointID: ep.ID,
		Method:     ep.Method,
		URL:        ep.URL,
		OK:         err == nil,
		ElapsedMs:  time.Since(start).Milliseconds(),
		CalledAt:   start.UTC(),
	}

	if err != nil {
		var apiErr *jsonapi.Error
		if errors.As(err, &apiErr) {
			outcome.ErrorKind = string(apiErr.Kind)
			outcome.HTTPStatus = apiErr.Details.HTTPStatus
		}
		r.log.ErrorObj("endpoint call failed", "call_result", map[string]any{
			"endpoint_id": ep.ID,
			"error":       err.Error(),
		})
		if r.fanout != nil && apiErr != nil {
			if _, nerr := r.fanout.Send(ctx, notify.NewEvent(ep.ID, apiErr.Kind, outcome, apiErr.Details)); nerr != nil {
				r.log.WarnObj("failure notification incomplete", "notify_error", nerr.Error())
			}
		}
	} else {
		outcome.HTTPStatus = result.Details.HTTPStatus
		r.log.InfoObj("endpoint call completed", "call_result", map[string]any{
			"endpoint_id": ep.ID,
			"http_status": result.Details.HTTPStatus,
			"elapsed_ms":  outcome.ElapsedMs,
		})
	}

	if err := r.store.Record(outcome); err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}
