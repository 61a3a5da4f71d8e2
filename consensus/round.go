// Package consensus implements the staged PoS/RANDAO round: validators
// commit signed randomness keyed by the current head, a quorum gate opens
// once every eligible validator has submitted, and a deterministic
// stake-weighted walk over the pooled randomness elects the next
// proposer.
package consensus

import "github.com/driftchain/driftchain/core"

// Round holds the per-head state described in the spec: the pool of
// submitted rands keyed by parent-block hash then by validator, and the
// election outcome once one has been computed for that parent.
type Round struct {
	randsByParent     map[string]map[string]uint64
	validatorByParent map[string]string
}

// NewRound returns an empty round-tracking structure.
func NewRound() *Round {
	return &Round{
		randsByParent:     make(map[string]map[string]uint64),
		validatorByParent: make(map[string]string),
	}
}

// SubmitRand records a validator's rand for parentHash, keeping the first
// value received for any (parentHash, validator) pair and ignoring
// resubmissions. Reports whether the value was newly recorded.
func (r *Round) SubmitRand(parentHash, validatorPKHex string, rand uint64) bool {
	byValidator, ok := r.randsByParent[parentHash]
	if !ok {
		byValidator = make(map[string]uint64)
		r.randsByParent[parentHash] = byValidator
	}
	if _, exists := byValidator[validatorPKHex]; exists {
		return false
	}
	byValidator[validatorPKHex] = rand
	return true
}

// Rands returns the rand pool submitted so far for parentHash.
func (r *Round) Rands(parentHash string) map[string]uint64 {
	return r.randsByParent[parentHash]
}

// Elected returns the validator already elected for parentHash, if any.
func (r *Round) Elected(parentHash string) (string, bool) {
	pk, ok := r.validatorByParent[parentHash]
	return pk, ok
}

// SetElected records the election outcome for parentHash.
func (r *Round) SetElected(parentHash, validatorPKHex string) {
	r.validatorByParent[parentHash] = validatorPKHex
}

// Eligible returns the set of public keys whose stake clears the
// configured minimum — the eligible set V from the spec.
func Eligible(accounts core.AccountMap, minStake int64) map[string]bool {
	v := make(map[string]bool)
	for pk, acc := range accounts {
		if acc.Stake > minStake {
			v[pk] = true
		}
	}
	return v
}

// QuorumReached reports whether the submitted-rand set R exactly equals
// the eligible set V and meets the minimum validator count — the gate
// that must hold before Elect may run.
func QuorumReached(eligible map[string]bool, rands map[string]uint64, minValidatorCnt int) bool {
	if len(rands) < minValidatorCnt {
		return false
	}
	if len(rands) != len(eligible) {
		return false
	}
	for pk := range rands {
		if !eligible[pk] {
			return false
		}
	}
	return true
}

// MissingValidators returns the eligible validators who have not yet
// submitted a rand for this round — the diagnostic the spec reserves for
// future slashing work.
func MissingValidators(eligible map[string]bool, rands map[string]uint64) []string {
	var missing []string
	for pk := range eligible {
		if _, ok := rands[pk]; !ok {
			missing = append(missing, pk)
		}
	}
	return missing
}
