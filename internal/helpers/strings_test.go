package helpers_test

import (
	"testing"

	"github.com/isometry/tag-enforcer/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    *string
		Expected string
	}{
		{
			Name:     "nil_string",
			Input:    nil,
			Expected: "",
		},
		{
			Name:     "empty_string",
			Input:    new(string),
			Expected: "",
		},
		{
			Name:     "value",
			Input:    helpers.Ptr("Owner"),
			Expected: "Owner",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, helpers.String(tc.Input))
		})
	}
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Length   int
		Expected string
	}{
		{
			Name:     "shorter",
			Input:    "aws.ec2",
			Length:   16,
			Expected: "aws.ec2",
		},
		{
			Name:     "exact",
			Input:    "aws.ec2",
			Length:   7,
			Expected: "aws.ec2",
		},
		{
			Name:     "longer",
			Input:    `{"source":"aws.s3"}`,
			Length:   10,
			Expected: `{"sourc...`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, helpers.Truncate(tc.Input, tc.Length))
		})
	}
}
