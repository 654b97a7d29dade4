package tests

import (
	"testing"

	"github.com/aretw0/primer/pkg/domain"
	"github.com/aretw0/primer/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GraphLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.GraphLoader.
// order is the expected ListNodes result.
func GraphLoaderContractTest(t *testing.T, loader ports.GraphLoader, setupData map[string][]byte, order []string) {
	t.Helper()

	t.Run("GetNode_Success", func(t *testing.T) {
		for id, expected := range setupData {
			content, err := loader.GetNode(id)
			require.NoError(t, err, "node %s", id)
			assert.JSONEq(t, string(expected), string(content), "content mismatch for %s", id)
		}
	})

	t.Run("GetNode_NotFound", func(t *testing.T) {
		_, err := loader.GetNode("non-existent-node")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNodeNotFound)
	})

	t.Run("ListNodes", func(t *testing.T) {
		nodes, err := loader.ListNodes()
		require.NoError(t, err)
		assert.Equal(t, order, nodes)
	})
}
