package models_test

import (
	"testing"

	"github.com/isometry/event-schema/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateKind(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Expected models.TemplateKind
		Error    bool
	}{
		{
			Name:     "json",
			Input:    "json",
			Expected: models.TemplateJSON,
		},
		{
			Name:     "serverlessjs",
			Input:    "serverlessjs",
			Expected: models.TemplateServerlessJS,
		},
		{
			Name:  "unknown",
			Input: "cdk",
			Error: true,
		},
		{
			Name:  "case_sensitive",
			Input: "JSON",
			Error: true,
		},
		{
			Name:  "empty",
			Input: "",
			Error: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			kind, err := models.ParseTemplateKind(tc.Input)
			if tc.Error {
				var target *models.UnknownTemplateError
				require.ErrorAs(t, err, &target)
				assert.Equal(t, tc.Input, target.Kind)
				assert.Contains(t, err.Error(), "json, serverlessjs")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, kind)
		})
	}
}
