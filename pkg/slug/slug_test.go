// Copyright (c) 2026 Vendo. All rights reserved.

package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple name", input: "Espresso Machine", expected: "espresso-machine"},
		{name: "accented characters", input: "Café Crème", expected: "cafe-creme"},
		{name: "special characters", input: "McVities' Biscuits (12-pack)!", expected: "mcvities-biscuits-12-pack"},
		{name: "multiple spaces collapse", input: "lots   of    spaces", expected: "lots-of-spaces"},
		{name: "leading and trailing junk", input: "  --hello--  ", expected: "hello"},
		{name: "digits preserved", input: "Model 3000X", expected: "model-3000x"},
		{name: "empty string", input: "", expected: ""},
		{name: "only special characters", input: "!!!???", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, From(tc.input))
		})
	}
}
