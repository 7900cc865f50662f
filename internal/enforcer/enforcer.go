// Package enforcer deletes newly created cloud resources that lack the required tags.
package enforcer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/isometry/tag-enforcer/internal/helpers"
	"github.com/isometry/tag-enforcer/internal/models"
)

// Option is a functional option used to configure an Enforcer.
type Option func(*Enforcer)

// WithLogger sets the logger used for enforcement log lines.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Enforcer) {
		e.logger = logger
	}
}

// WithDryRun disables terminate and delete calls.
func WithDryRun(dryRun bool) Option {
	return func(e *Enforcer) {
		e.dryRun = dryRun
	}
}

// Enforcer routes resource-creation events to the matching resource and removes it when required tags are missing.
type Enforcer struct {
	provider Provider
	logger   *slog.Logger
	dryRun   bool
}

// New creates an Enforcer backed by provider.
func New(provider Provider, opts ...Option) *Enforcer {
	_inst := &Enforcer{provider: provider}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	return _inst
}

// Dispatch handles a single creation event. It never returns an error: unhandled sources are ignored
// and any fault is logged and recorded in the returned Result.
func (e *Enforcer) Dispatch(ctx context.Context, event models.Event) models.Result {
	logger := e.logger.With(slog.String("source", event.Source))
	logger.Info("Received event",
		slog.String("id", event.ID),
		slog.String("detailType", event.DetailType),
		slog.String("eventName", event.Detail.EventName))

	result := models.Result{Source: event.Source}

	resource, err := NewResource(event, e.provider, logger)
	var unhandled *UnhandledSourceError
	if errors.As(err, &unhandled) {
		logger.Info(fmt.Sprintf("Unhandled source: %s", event.Source))
		result.Action = models.ActionIgnored
		return result
	}

	if err == nil {
		err = e.enforce(ctx, logger, resource, &result)
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Error processing event: %v", err), slog.Any("error", err))
		result.Action = models.ActionFailed
		result.Error = err.Error()
	}
	return result
}

func (e *Enforcer) enforce(ctx context.Context, logger *slog.Logger, resource Resource, result *models.Result) error {
	result.Kind = string(resource.Kind())
	result.ResourceID = resource.ID()
	logger = logger.With(slog.String("kind", result.Kind), slog.String("resourceId", result.ResourceID))
	logger.Info(fmt.Sprintf("New %s created", resource.Label()))

	tags, err := resource.FetchTags(ctx)
	if err != nil {
		return err
	}
	result.Present = models.TagKeys(tags)
	result.Missing = MissingTags(tags)

	if CheckTags(logger, tags, resource.Label()) {
		result.Compliant = true
		result.Action = models.ActionNone
		return nil
	}

	verb := "Deleting"
	if resource.Action() == models.ActionTerminated {
		verb = "Terminating"
	}
	if e.dryRun {
		logger.Info(fmt.Sprintf("Dry run: %s %s skipped", verb, resource.Label()))
		result.Action = models.ActionDryRun
		return nil
	}

	logger.Info(fmt.Sprintf("%s %s (missing tags)...", verb, resource.Label()))
	if err = resource.Enforce(ctx); err != nil {
		var contained *ContainedError
		if errors.As(err, &contained) {
			result.Action = models.ActionFailed
			result.Error = contained.Error()
			return nil
		}
		return err
	}
	result.Action = resource.Action()
	return nil
}
