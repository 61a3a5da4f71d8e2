package validation

import (
	"github.com/driftchain/driftchain/core"
)

// Transaction runs the signature, timestamp, fee, and per-type checks
// described for each tx_type. account may be nil only when the source has
// never been referenced before; most tx_type branches reject that case via
// ACCOUNT_MISSING.
func Transaction(tx *core.Transaction, account *core.Account, isInitialBlock bool, params Params, now float64) error {
	if err := tx.Verify(); err != nil {
		return fail(SignatureInvalid, err.Error())
	}
	if tx.Timestamp > now {
		return fail(TimestampFuture, "")
	}
	if tx.Source.TxFee != nil && *tx.Source.TxFee < 0 {
		return fail(FeeNegative, "")
	}

	switch tx.Source.TxType {
	case core.TxStake:
		return validateStake(tx, account)
	case core.TxTransfer:
		return validateTransferLike(tx, account, TransferInvalid)
	case core.TxTip:
		return validateTransferLike(tx, account, TipInvalid)
	case core.TxICO:
		return validateICO(tx, isInitialBlock, params)
	default:
		// Social transactions (POST..UNFOLLOW) carry no further state check.
		return nil
	}
}

func validateStake(tx *core.Transaction, account *core.Account) error {
	if account == nil {
		return fail(AccountMissing, "")
	}
	if tx.Target.TxToken == nil {
		return fail(StakeInvalid, "missing tx_token")
	}
	token := *tx.Target.TxToken
	if token >= 0 {
		if token > account.Balance {
			return fail(StakeInvalid, "over-stake")
		}
		return nil
	}
	if -token > account.Stake {
		return fail(StakeInvalid, "un-stake exceeds current stake")
	}
	return nil
}

func validateTransferLike(tx *core.Transaction, account *core.Account, kind ErrorKind) error {
	if account == nil {
		return fail(AccountMissing, "")
	}
	if tx.Target.TxToken == nil || *tx.Target.TxToken < 0 {
		return fail(kind, "missing or negative tx_token")
	}
	if tx.Target.TargetPKHex == nil {
		return fail(kind, "missing target_pk_hex")
	}
	spend := *tx.Target.TxToken
	if tx.Source.TxFee != nil {
		spend += *tx.Source.TxFee
	}
	if spend > account.Balance {
		return fail(kind, "insufficient balance")
	}
	return nil
}

func validateICO(tx *core.Transaction, isInitialBlock bool, params Params) error {
	if !isInitialBlock {
		return fail(ICOInvalid, "ICO outside genesis block")
	}
	if !params.ICOPublicKeys[tx.Source.SourcePKHex] {
		return fail(ICOInvalid, "source_pk_hex not in ICO allow-list")
	}
	if tx.Target.TxToken == nil || *tx.Target.TxToken != params.ICOTokens {
		return fail(ICOInvalid, "tx_token does not match configured ico_tokens")
	}
	return nil
}
