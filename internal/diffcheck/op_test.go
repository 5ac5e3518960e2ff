package diffcheck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOps(t *testing.T) {
	ops, err := ParseOps("")
	require.NoError(t, err)
	require.Equal(t, AllOps, ops)

	ops, err = ParseOps(" mul, ADD,,mul ")
	require.NoError(t, err)
	require.Equal(t, []Op{OpMul, OpAdd}, ops)

	_, err = ParseOps("add,pow")
	require.Error(t, err)
	require.True(t, Error.Has(err))
}

func TestSortOps(t *testing.T) {
	ops := []Op{OpRoundTrip, OpQuoInt, OpAdd}
	SortOps(ops)
	require.Equal(t, []Op{OpAdd, OpQuoInt, OpRoundTrip}, ops)
}

func TestApplyString(t *testing.T) {
	_, err := OpString.Apply(Operands{})
	require.Error(t, err)
}
