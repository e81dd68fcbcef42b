package types

import (
	"cosmossdk.io/math"
)

var bpsDenominator = math.NewIntFromUint64(uint64(MaxFeeRateBps))

// ComputeRedeemFee returns floor(amount * rateBps / 10000).
//
// amount is split as q*10000 + r so the result is q*rateBps + floor(r*rateBps/10000),
// which equals the direct formula exactly and never needs more bits than amount itself.
func ComputeRedeemFee(amount math.Int, rateBps uint32) (math.Int, error) {
	if amount.IsNil() || amount.IsNegative() {
		return math.Int{}, ErrInvalidRequest.Wrap("collateral amount must be non-negative")
	}
	if rateBps > MaxFeeRateBps {
		return math.Int{}, ErrInvalidConfig.Wrapf("redeem fee rate %d exceeds %d bps", rateBps, MaxFeeRateBps)
	}
	rate := math.NewIntFromUint64(uint64(rateBps))
	q := amount.Quo(bpsDenominator)
	r := amount.Mod(bpsDenominator)

	whole, err := q.SafeMul(rate)
	if err != nil {
		return math.Int{}, ErrOverflow.Wrap(err.Error())
	}
	return whole.Add(r.Mul(rate).Quo(bpsDenominator)), nil
}

// SplitRedemption returns the fee and the payout for redeeming amount at rateBps.
func SplitRedemption(amount math.Int, rateBps uint32) (fee, payout math.Int, err error) {
	fee, err = ComputeRedeemFee(amount, rateBps)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return fee, amount.Sub(fee), nil
}
