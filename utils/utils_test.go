package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	require.Equal(t, 1, Min(1, 2))
	require.Equal(t, -3, Min(4, -3))
	require.Equal(t, 2, Max(1, 2))
	require.Equal(t, 4.5, Max(4.5, -3.0))
	require.Equal(t, 5, Max(5, 5))
}
