package nfl

import (
	"testing"

	"github.com/afli-go/afli/internal/testutil"
	"github.com/stretchr/testify/require"
)

// S5 - uniform data: the squashing transform makes large-magnitude keys
// cluster rather than spreading them, so it should not be preferred.
func TestAutoSwitchOffOnUniformData(t *testing.T) {
	keys := testutil.UniformKeys(1, 10000, 1000)

	tr := squashTransform(0.01)

	enabled, tailConflicts := AutoSwitch(tr, keys)
	require.False(t, enabled)
	require.Equal(t, estimateTailConflicts(keys), tailConflicts)
}

// S6 - lognormal data: a modest squashing transform compresses the long
// right tail, reducing how many keys crowd into the same segment.
func TestAutoSwitchOnOnLognormalData(t *testing.T) {
	keys := testutil.LognormalKeys(2, 10000)

	tr := squashTransform(0.05)

	enabled, tailConflicts := AutoSwitch(tr, keys)
	require.True(t, enabled)
	require.Equal(t, estimateTailConflicts(tr.EvaluateBatch(keys)), tailConflicts)
}

func TestAutoSwitchEmptyData(t *testing.T) {
	enabled, tailConflicts := AutoSwitch(squashTransform(1), nil)
	require.False(t, enabled)
	require.Equal(t, 0, tailConflicts)
}
