package validation

import "github.com/driftchain/driftchain/core"

// Block verifies a block's own signature, every contained transaction
// under accountMap, the expected-validator match (when the election for
// this head is already known), and parent linkage against head.
//
// isInitialBlock is derived the same way core.Block.IsInitial does it:
// neither prev_block nor prev_hash_hex is set.
func Block(block *core.Block, accountMap core.AccountMap, expectedValidator *string, headHash *string, params Params, now float64) error {
	if err := block.Verify(); err != nil {
		return fail(BlockSignatureBad, err.Error())
	}

	isInitialBlock := block.IsInitial()
	for _, tx := range block.Txs {
		account := accountMap.Peek(tx.Source.SourcePKHex)
		if err := Transaction(tx, account, isInitialBlock, params, now); err != nil {
			return err
		}
	}

	if expectedValidator != nil && block.ValidatorPKHex != *expectedValidator {
		return fail(ValidatorMismatch, "")
	}

	if headHash == nil {
		if block.PrevHashHex != nil {
			return fail(NotHead, "chain is empty, block is not genesis")
		}
		return nil
	}
	if block.PrevHashHex == nil || *block.PrevHashHex != *headHash {
		return fail(NotHead, "")
	}
	return nil
}
