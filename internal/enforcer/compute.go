package enforcer

import (
	"context"
	"log/slog"

	"github.com/isometry/tag-enforcer/internal/models"
)

type instance struct {
	id  string
	api ComputeAPI
}

func newInstance(event models.Event, provider Provider, _ *slog.Logger) (Resource, error) {
	items := event.Detail.ResponseElements.InstancesSet.Items
	if len(items) == 0 || items[0].InstanceID == "" {
		return nil, &MissingFieldError{Source: event.Source, Field: "detail.responseElements.instancesSet.items[0].instanceId"}
	}
	return &instance{id: items[0].InstanceID, api: provider}, nil
}

func (r *instance) Kind() Kind            { return Compute }
func (r *instance) ID() string            { return r.id }
func (r *instance) Label() string         { return "EC2 " + r.id }
func (r *instance) Action() models.Action { return models.ActionTerminated }

func (r *instance) FetchTags(ctx context.Context) ([]models.Tag, error) {
	return r.api.InstanceTags(ctx, r.id)
}

func (r *instance) Enforce(ctx context.Context) error {
	return r.api.TerminateInstance(ctx, r.id)
}
