package validation

import "github.com/driftchain/driftchain/core"

// Rand verifies a ValidatorRand's signature and timestamp. rand is an
// unsigned integer by construction so no non-negativity check is needed;
// uniqueness (one rand per validator per parent) is enforced by
// first-wins in the consensus engine, not here.
func Rand(vr *core.ValidatorRand, now float64) error {
	if err := vr.Verify(); err != nil {
		return fail(RandInvalid, err.Error())
	}
	if vr.Timestamp > now {
		return fail(RandInvalid, "timestamp in the future")
	}
	return nil
}
