//go:build unit || e2e

package testutil

import (
	"encoding/json"

	"github.com/stretchr/testify/require"
)

// TestingT is the part of *testing.T that DtoMap needs.
type TestingT interface {
	require.TestingT
	Helper()
}

// DtoMap turns a request DTO into a mutable JSON object.
func DtoMap(t TestingT, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}
