package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/driftchain/driftchain/validation"
)

// Config holds the ten configuration options enumerated in the external
// interface: what to listen as, who to bootstrap from, the ICO
// allow-list and payout, the consensus thresholds, and the optional
// signing key and seed chain.
type Config struct {
	SelfAddress       string `json:"self_address"`
	SeedPeersPath     string `json:"seed_peers_path,omitempty"`
	ICOPublicKeysPath string `json:"ico_public_keys_path,omitempty"`
	ICOTokens         int64  `json:"ico_tokens"`
	ValidationReward  int64  `json:"validation_reward"`
	ValidatorMinStake int64  `json:"validator_min_stake"`
	MaxTxPerBlock     int    `json:"max_tx_per_block"`
	MinValidatorCnt   int    `json:"min_validator_cnt"`
	PrivateKeyPath    string `json:"private_key_path,omitempty"`
	InitBlockchainPath string `json:"init_blockchain_path,omitempty"`
}

// Load reads a JSON config file from path and validates required fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all required fields are present and well-formed.
func (c *Config) Validate() error {
	if c.SelfAddress == "" {
		return fmt.Errorf("self_address must not be empty")
	}
	if c.ValidationReward < 0 {
		return fmt.Errorf("validation_reward must be non-negative")
	}
	if c.MaxTxPerBlock <= 0 {
		return fmt.Errorf("max_tx_per_block must be positive")
	}
	if c.MinValidatorCnt <= 0 {
		return fmt.Errorf("min_validator_cnt must be positive")
	}
	return nil
}

// Params converts the loaded config plus a resolved ICO allow-list into
// the validation.Params the core validators consume.
func (c *Config) Params(icoPublicKeys map[string]bool) validation.Params {
	return validation.Params{
		ValidationReward:  c.ValidationReward,
		ValidatorMinStake: c.ValidatorMinStake,
		MaxTxPerBlock:     c.MaxTxPerBlock,
		MinValidatorCnt:   c.MinValidatorCnt,
		ICOTokens:         c.ICOTokens,
		ICOPublicKeys:     icoPublicKeys,
	}
}

// LoadAddressList reads a newline-delimited list of addresses or
// public-key hexes (blank lines and lines starting with '#' ignored),
// used for both seed_peers_path and ico_public_keys_path.
func LoadAddressList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var list []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	return list, scanner.Err()
}

// LoadICOPublicKeySet reads ico_public_keys_path into a set for
// validation.Params.ICOPublicKeys.
func LoadICOPublicKeySet(path string) (map[string]bool, error) {
	list, err := LoadAddressList(path)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(list))
	for _, pk := range list {
		set[pk] = true
	}
	return set, nil
}
