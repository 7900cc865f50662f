package enforcer_test

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/isometry/tag-enforcer/internal/enforcer"
	"github.com/isometry/tag-enforcer/internal/models"
	"github.com/stretchr/testify/assert"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func tagsOf(keys ...string) []models.Tag {
	tags := make([]models.Tag, 0, len(keys))
	for _, k := range keys {
		tags = append(tags, models.Tag{Key: k, Value: "v-" + k})
	}
	return tags
}

func TestRequiredTags(t *testing.T) {
	assert.Equal(t, []string{"Environment", "Owner", "Keep_Until"}, enforcer.RequiredTags())

	mutated := enforcer.RequiredTags()
	mutated[0] = "Team"
	assert.Equal(t, "Environment", enforcer.RequiredTags()[0], "callers receive a copy")
}

func TestMissingTags(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    []models.Tag
		Expected []string
	}{
		{
			Name:     "no_tags",
			Input:    nil,
			Expected: []string{"Environment", "Owner", "Keep_Until"},
		},
		{
			Name:     "all_present",
			Input:    tagsOf("Environment", "Owner", "Keep_Until"),
			Expected: nil,
		},
		{
			Name:     "reverse_order_with_extras",
			Input:    tagsOf("CostCenter", "Keep_Until", "Name", "Owner", "Environment"),
			Expected: nil,
		},
		{
			Name:     "missing_owner",
			Input:    tagsOf("Environment", "Keep_Until"),
			Expected: []string{"Owner"},
		},
		{
			Name:     "declaration_order_not_input_order",
			Input:    tagsOf("Name", "Owner"),
			Expected: []string{"Environment", "Keep_Until"},
		},
		{
			Name:     "duplicates",
			Input:    tagsOf("Owner", "Owner", "Environment", "Environment"),
			Expected: []string{"Keep_Until"},
		},
		{
			Name:     "case_sensitive_keys",
			Input:    tagsOf("environment", "owner", "keep_until"),
			Expected: []string{"Environment", "Owner", "Keep_Until"},
		},
		{
			Name:     "values_ignored",
			Input:    []models.Tag{{Key: "Environment"}, {Key: "Owner"}, {Key: "Keep_Until"}},
			Expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, enforcer.MissingTags(tc.Input))
		})
	}
}

func TestCheckTags(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		logger, buf := bufferLogger()
		assert.True(t, enforcer.CheckTags(logger, tagsOf("Owner", "Environment", "Keep_Until"), "EC2 i-1"))
		assert.Contains(t, buf.String(), "EC2 i-1 has all required tags.")
	})

	t.Run("incomplete", func(t *testing.T) {
		logger, buf := bufferLogger()
		assert.False(t, enforcer.CheckTags(logger, tagsOf("Environment"), "S3 bucket logs"))
		assert.Contains(t, buf.String(), "S3 bucket logs is missing tags: [Owner Keep_Until]")
	})

	t.Run("any_superset_in_any_order", func(t *testing.T) {
		logger, _ := bufferLogger()
		rng := rand.New(rand.NewPCG(1, 2))
		for i := 0; i < 100; i++ {
			keys := append(enforcer.RequiredTags(), "Name", "Team", "Owner")
			rng.Shuffle(len(keys), func(a, b int) { keys[a], keys[b] = keys[b], keys[a] })
			assert.True(t, enforcer.CheckTags(logger, tagsOf(keys...), "RDS db"), "keys: %v", keys)
		}
	})

	t.Run("any_strict_subset", func(t *testing.T) {
		logger, _ := bufferLogger()
		required := enforcer.RequiredTags()
		for mask := 0; mask < 1<<len(required)-1; mask++ {
			keys := []string{"Name"}
			var expected []string
			for i, k := range required {
				if mask&(1<<i) != 0 {
					keys = append(keys, k)
				} else {
					expected = append(expected, k)
				}
			}
			tags := tagsOf(keys...)
			assert.False(t, enforcer.CheckTags(logger, tags, "RDS db"), "keys: %v", keys)
			assert.Equal(t, expected, enforcer.MissingTags(tags))
		}
	})
}
