package models

import "log/slog"

// Action is what the enforcer did with the resource named in an event.
type Action string

const (
	// ActionNone means the resource carried every required tag.
	ActionNone Action = "none"
	// ActionIgnored means the event source is not handled.
	ActionIgnored Action = "ignored"
	// ActionTerminated means the compute instance was terminated.
	ActionTerminated Action = "terminated"
	// ActionDeleted means the database or bucket was deleted.
	ActionDeleted Action = "deleted"
	// ActionDryRun means a destructive call was due but skipped.
	ActionDryRun Action = "dry-run"
	// ActionFailed means processing stopped on a fault.
	ActionFailed Action = "failed"
)

// Result is the outcome of handling a single event.
type Result struct {
	Source     string   `json:"source"`
	Kind       string   `json:"kind,omitempty"`
	ResourceID string   `json:"resourceId,omitempty"`
	Present    []string `json:"present,omitempty"`
	Missing    []string `json:"missing,omitempty"`
	Compliant  bool     `json:"compliant"`
	Action     Action   `json:"action"`
	Error      string   `json:"error,omitempty"`
}

// Acted reports whether the result involved a resource that was looked up.
func (r Result) Acted() bool {
	return r.Kind != "" && r.ResourceID != ""
}

// LogValue implements slog.LogValuer.
func (r Result) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("source", r.Source),
		slog.String("action", string(r.Action)),
	}
	if r.Kind != "" {
		attrs = append(attrs, slog.String("kind", r.Kind))
	}
	if r.ResourceID != "" {
		attrs = append(attrs, slog.String("resourceId", r.ResourceID))
	}
	if len(r.Missing) > 0 {
		attrs = append(attrs, slog.Any("missing", r.Missing))
	}
	if r.Error != "" {
		attrs = append(attrs, slog.String("error", r.Error))
	}
	return slog.GroupValue(attrs...)
}
