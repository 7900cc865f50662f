package enforcer

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/isometry/tag-enforcer/internal/models"
)

// requiredTags is the set of tag keys every governed resource must carry, in reporting order.
var requiredTags = []string{"Environment", "Owner", "Keep_Until"}

// RequiredTags returns a copy of the required tag keys in declaration order.
func RequiredTags() []string {
	return slices.Clone(requiredTags)
}

// MissingTags returns the required tag keys absent from tags, in declaration order.
// Only keys are compared; values are never inspected.
func MissingTags(tags []models.Tag) []string {
	present := models.TagKeys(tags)
	var missing []string
	for _, key := range requiredTags {
		if !slices.Contains(present, key) {
			missing = append(missing, key)
		}
	}
	return missing
}

// CheckTags reports whether tags carry every required key and logs the verdict for label.
func CheckTags(logger *slog.Logger, tags []models.Tag, label string) bool {
	missing := MissingTags(tags)
	if len(missing) > 0 {
		logger.Info(fmt.Sprintf("%s is missing tags: %v", label, missing), slog.Any("missing", missing))
		return false
	}
	logger.Info(fmt.Sprintf("%s has all required tags.", label))
	return true
}
