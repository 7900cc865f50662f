// Package runtime adapts the enforcer to the AWS Lambda handler signature and to net/http.
package runtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/isometry/tag-enforcer/internal/helpers"
	"github.com/isometry/tag-enforcer/internal/models"
	"github.com/pkg/errors"
)

// Dispatcher handles a decoded resource-creation event.
type Dispatcher interface {
	Dispatch(ctx context.Context, event models.Event) models.Result
}

// Reporter stores enforcement results.
type Reporter interface {
	PutS3Object(ctx context.Context, id string, bucket string, body []byte) error
}

type Option func(*Runtime)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithReporter uploads every result that names a resource to bucket.
func WithReporter(reporter Reporter, bucket string) Option {
	return func(r *Runtime) {
		r.reporter = reporter
		r.reportBucket = bucket
	}
}

type Runtime struct {
	dispatcher   Dispatcher
	reporter     Reporter
	reportBucket string
	logger       *slog.Logger
}

// NewRuntime creates a new runtime instance
func NewRuntime(dispatcher Dispatcher, opts ...Option) *Runtime {
	_inst := &Runtime{dispatcher: dispatcher}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	return _inst
}

// DecodeEvent converts a raw EventBridge payload into an Event.
func DecodeEvent(raw map[string]any) (models.Event, error) {
	var event models.Event
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
		Result:     &event,
	})
	if err != nil {
		return event, errors.Wrap(err, "failed to create event decoder")
	}
	if err = decoder.Decode(raw); err != nil {
		return event, errors.Wrap(err, "failed to decode event")
	}
	return event, nil
}

// Lambda is the Lambda handler for the runtime. The returned error is always nil.
func (r *Runtime) Lambda(ctx context.Context, raw map[string]any) (models.Result, error) {
	r.logger.Debug("received Lambda event")
	return r.handle(ctx, raw), nil
}

// ServeHTTP is the HTTP handler for the runtime
func (r *Runtime) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	switch req.Method {
	case http.MethodPost:
		break
	default:
		r.logger.Debug("rejecting HTTP request...", slog.Any("requestor", req.RemoteAddr), "reason", "method not allowed", slog.Any("method", req.Method))
		helpers.RespondHTTP(models.Response{StatusCode: http.StatusMethodNotAllowed}, nil, resp)
		return
	}

	r.logger.Debug("received HTTP request...", slog.Any("requestor", req.RemoteAddr), slog.Any("path", req.URL.Path))
	body, err := io.ReadAll(req.Body)
	if err != nil {
		r.logger.Error("failed to read request body", slog.Any("error", err))
		helpers.RespondHTTP(models.Response{StatusCode: http.StatusInternalServerError}, err, resp)
		return
	}

	var raw map[string]any
	if err = json.Unmarshal(body, &raw); err != nil {
		r.logger.Warn("failed to parse request body", slog.Any("error", err), slog.String("body", helpers.Truncate(string(body), 256)))
		helpers.RespondHTTP(models.Response{StatusCode: http.StatusBadRequest}, errors.Wrap(err, "invalid event payload"), resp)
		return
	}

	result := r.handle(req.Context(), raw)
	helpers.RespondHTTP(models.Response{
		Body:       string(result.Action),
		Headers:    map[string]string{"Content-Type": "application/json"},
		StatusCode: http.StatusOK,
		Result:     &result,
	}, nil, resp)
}

func (r *Runtime) handle(ctx context.Context, raw map[string]any) models.Result {
	event, err := DecodeEvent(raw)
	if err != nil {
		source, _ := raw["source"].(string)
		r.logger.Error("Error processing event: "+err.Error(), slog.Any("error", err))
		return models.Result{Source: source, Action: models.ActionFailed, Error: err.Error()}
	}

	result := r.dispatcher.Dispatch(ctx, event)
	r.logger.Info("handled event", slog.Any("result", result))

	// Extensions
	r.extensions(ctx, result)
	return result
}

// extensions is a helper function to execute additional runtime extensions
func (r *Runtime) extensions(ctx context.Context, result models.Result) {
	if r.reporter == nil || r.reportBucket == "" || !result.Acted() {
		return
	}
	body, err := json.Marshal(result)
	if err != nil {
		r.logger.Warn("failed to encode enforcement report", slog.Any("error", err))
		return
	}
	if err = r.reporter.PutS3Object(ctx, result.Kind, r.reportBucket, body); err != nil {
		r.logger.Warn("failed to upload enforcement report", slog.Any("error", err))
		return
	}
	r.logger.Debug("uploaded enforcement report", slog.String("bucket", r.reportBucket))
}
