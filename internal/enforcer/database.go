package enforcer

import (
	"context"
	"log/slog"

	"github.com/isometry/tag-enforcer/internal/models"
)

type database struct {
	id  string
	arn string
	api DatabaseAPI
}

func newDatabase(event models.Event, provider Provider, _ *slog.Logger) (Resource, error) {
	elements := event.Detail.ResponseElements
	if elements.DBInstanceIdentifier == "" {
		return nil, &MissingFieldError{Source: event.Source, Field: "detail.responseElements.dBInstanceIdentifier"}
	}
	if elements.DBInstanceArn == "" {
		return nil, &MissingFieldError{Source: event.Source, Field: "detail.responseElements.dBInstanceArn"}
	}
	return &database{
		id:  elements.DBInstanceIdentifier,
		arn: elements.DBInstanceArn,
		api: provider,
	}, nil
}

func (r *database) Kind() Kind            { return Database }
func (r *database) ID() string            { return r.id }
func (r *database) Label() string         { return "RDS " + r.id }
func (r *database) Action() models.Action { return models.ActionDeleted }

func (r *database) FetchTags(ctx context.Context) ([]models.Tag, error) {
	return r.api.DatabaseTags(ctx, r.arn)
}

// Enforce deletes the instance without a final snapshot.
func (r *database) Enforce(ctx context.Context) error {
	return r.api.DeleteDatabase(ctx, r.id)
}
