// Package ethunits converts between wei amounts and decimal ether strings.
package ethunits

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/marketplace-indexer/common/errs"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of decimals between wei and ether.
const EtherDecimals = 18

// FromWei formats a wei amount as an ether decimal string without trailing zeros.
func FromWei(wei *uint256.Int) string {
	return ToDecimal(wei, EtherDecimals).String()
}

// ToDecimal scales an integer amount down by the given number of decimals.
func ToDecimal(amount *uint256.Int, decimals int32) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount.ToBig(), -decimals)
}

// ToWei parses an ether decimal string into wei.
// Amounts with more than 18 fractional digits, negative amounts and overflows are rejected.
func ToWei(ether string) (*uint256.Int, error) {
	d, err := decimal.NewFromString(ether)
	if err != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "invalid ether amount %q", ether)
	}
	if d.IsNegative() {
		return nil, errors.Wrapf(errs.InvalidArgument, "negative ether amount %q", ether)
	}
	scaled := d.Shift(EtherDecimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, errors.Wrapf(errs.InvalidArgument, "ether amount %q has more than %d decimals", ether, EtherDecimals)
	}
	wei, overflow := uint256.FromBig(scaled.BigInt())
	if overflow {
		return nil, errors.Wrapf(errs.InvalidArgument, "ether amount %q overflows uint256", ether)
	}
	return wei, nil
}
