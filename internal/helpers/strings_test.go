package helpers_test

import (
	"testing"

	"github.com/isometry/event-schema/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	testCases := []struct {
		Name     string
		Input    string
		Expected string
	}{
		{
			Name:     "empty",
			Input:    "",
			Expected: "",
		},
		{
			Name:     "lower_camel",
			Input:    "userSignedUp",
			Expected: "UserSignedUp",
		},
		{
			Name:     "already_capitalized",
			Input:    "OrderPlaced",
			Expected: "OrderPlaced",
		},
		{
			Name:     "single_rune",
			Input:    "o",
			Expected: "O",
		},
		{
			Name:     "rest_untouched",
			Input:    "order_PLACED",
			Expected: "Order_PLACED",
		},
		{
			Name:     "leading_digit",
			Input:    "3dsSecured",
			Expected: "3dsSecured",
		},
		{
			Name:     "multibyte",
			Input:    "évènement",
			Expected: "Évènement",
		},
		{
			Name:     "invalid_utf8",
			Input:    "\xffoo",
			Expected: "\xffoo",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, helpers.Capitalize(tc.Input))
		})
	}
}
