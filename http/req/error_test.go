package req_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/basecamp"
	"github.com/xy-planning-network/basecamp/http/req"
)

// resolveBatch mirrors the body POST /api/resolve accepts.
type resolveBatch struct {
	Paths []string `json:"paths" validate:"required,min=1,max=50,dive,required"`
}

func TestValidationErrorError(t *testing.T) {
	tcs := []struct {
		name     string
		err      req.ValidationError
		expected string
	}{
		{"Rule", req.ValidationError{Field: "paths[1]", Got: "", Rule: "required; string"}, "paths[1]: got , breaks required; string"},
		{"No-Rule", req.ValidationError{Field: "limit", Got: "many"}, "limit: got many"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestValidationErrorsFromResolveBatch(t *testing.T) {
	parser := req.NewParser()

	many := make([]string, 51)
	for i := range many {
		many[i] = fmt.Sprintf("/docs/%d", i)
	}

	tcs := []struct {
		name  string
		paths []string
		field string
		rule  string
	}{
		{"Nil-Paths", nil, "paths", "required; []string"},
		{"No-Paths", []string{}, "paths", "min=1; []string"},
		{"Too-Many-Paths", many, "paths", "max=50; []string"},
		{"Blank-Path", []string{"/about", ""}, "paths[1]", "required; string"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b, err := json.Marshal(resolveBatch{Paths: tc.paths})
			require.NoError(t, err)

			// Act
			err = parser.ParseBody(bytes.NewReader(b), &resolveBatch{})

			// Assert
			require.ErrorIs(t, err, basecamp.ErrNotValid)

			var verrs req.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)

			actual, ok := verrs.Field(tc.field)
			require.True(t, ok)
			require.Equal(t, tc.rule, actual.Rule)
		})
	}
}

func TestValidationErrorsError(t *testing.T) {
	// Arrange
	v := req.ValidationErrors{
		{Field: "paths[0]", Got: "", Rule: "required; string"},
		{Field: "paths[2]", Got: "", Rule: "required; string"},
	}

	// Act
	actual := v.Error()

	// Assert
	require.Equal(t, "paths[0]: got , breaks required; string; paths[2]: got , breaks required; string", actual)
	require.Zero(t, req.ValidationErrors{}.Error())
}

func TestValidationErrorsField(t *testing.T) {
	// Arrange
	v := req.ValidationErrors{{Field: "path", Got: "", Rule: "required; string"}}

	// Act
	found, ok := v.Field("path")
	_, missing := v.Field("paths")

	// Assert
	require.True(t, ok)
	require.Equal(t, "required; string", found.Rule)
	require.False(t, missing)
}

func TestValidationErrorsMarshalJSON(t *testing.T) {
	tcs := []struct {
		name     string
		v        req.ValidationErrors
		expected string
	}{
		{"None", nil, `{}`},
		{
			"Missing-Path",
			req.ValidationErrors{{Field: "path", Got: "", Rule: "required; string"}},
			`{"validationErrors":[{"field":"path","got":"","rule":"required; string"}]}`,
		},
		{
			"Bad-Limit",
			req.ValidationErrors{{Field: "limit", Got: "bad value at index 0"}},
			`{"validationErrors":[{"field":"limit","got":"bad value at index 0"}]}`,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := json.Marshal(tc.v)

			// Assert
			require.NoError(t, err)
			require.Equal(t, tc.expected, string(actual))
		})
	}
}

func TestValidationErrorsUnwrap(t *testing.T) {
	err := fmt.Errorf("resolving: %w", req.ValidationErrors{{Field: "path", Rule: "required; string"}})
	require.ErrorIs(t, err, basecamp.ErrNotValid)
}
