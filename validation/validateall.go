package validation

import "github.com/driftchain/driftchain/core"

// All re-runs block validation oldest-first, folding a fresh AccountMap as
// it goes, and returns the resulting map. Used by chain bootstrap to
// accept only a peer's chain that both out-lengths the local one and
// passes this replay.
func All(chain *core.Chain, params Params, now float64) (core.AccountMap, error) {
	accounts := core.NewAccountMap()
	blocks := chain.BlocksOldestFirst()

	var headHash *string
	for _, block := range blocks {
		if err := Block(block, accounts, nil, headHash, params, now); err != nil {
			return nil, err
		}
		accounts.ApplyBlock(block, params.ValidationReward)
		hash := block.BlockHash
		headHash = &hash
	}
	return accounts, nil
}
