package config

import (
	"github.com/driftchain/driftchain/core"
	"github.com/driftchain/driftchain/walletkey"
)

// BuildGenesisICOBlock builds and signs the genesis block: one ICO
// transaction per holder (each minting icoTokens of stake to itself),
// proposed and signed by proposer. Per the data model, the genesis block
// has neither prev_block nor prev_hash_hex.
func BuildGenesisICOBlock(holders []*walletkey.Wallet, icoTokens int64, proposer *walletkey.Wallet, timestamp float64) *core.Block {
	txs := make([]*core.Transaction, len(holders))
	for i, holder := range holders {
		token := icoTokens
		txs[i] = holder.NewTransaction(core.TxICO, core.TransactionTarget{TxToken: &token}, timestamp)
	}

	block := core.NewBlock(nil, proposer.PubKeyHex(), timestamp, txs)
	block.Sign(proposer.PrivKey())
	return block
}
