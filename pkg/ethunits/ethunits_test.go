package ethunits

import (
	"testing"

	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromWei(t *testing.T) {
	tc := []struct {
		wei      *uint256.Int
		expected string
	}{
		{uint256.NewInt(0), "0"},
		{uint256.NewInt(1), "0.000000000000000001"},
		{uint256.NewInt(1_000_000_000_000_000_000), "1"},
		{uint256.NewInt(1_500_000_000_000_000_000), "1.5"},
		{uint256.MustFromDecimal("123456789000000000000000"), "123456.789"},
		{nil, "0"},
	}
	for _, tt := range tc {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromWei(tt.wei))
		})
	}
}

func TestToWei(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		wei, err := ToWei("0.1")
		require.NoError(t, err)
		assert.Equal(t, uint256.NewInt(100_000_000_000_000_000), wei)

		wei, err = ToWei("2")
		require.NoError(t, err)
		assert.Equal(t, "2000000000000000000", wei.Dec())
	})
	t.Run("round trip", func(t *testing.T) {
		in := uint256.MustFromDecimal("987654321987654321987")
		wei, err := ToWei(FromWei(in))
		require.NoError(t, err)
		assert.Equal(t, in, wei)
	})
	for _, in := range []string{"abc", "-1", "0.0000000000000000001"} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := ToWei(in)
			assert.ErrorIs(t, err, errs.InvalidArgument)
		})
	}
}
