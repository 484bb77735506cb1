package config

import (
	"fmt"

	tmcfg "github.com/tendermint/tendermint/config"
)

const (
	DefaultChainID          = "autoburn"
	DefaultLedgerCacheSize  = 10000
	DefaultEventJournalName = "burn_events"
	DefaultEventJournalDB   = "goleveldb"
)

type Config struct {
	*tmcfg.Config
	AutoBurn *AutoBurnConfig `mapstructure:"autoburn"`
}

// AutoBurnConfig holds the settings of the burn controllers and the event journal.
type AutoBurnConfig struct {
	ChainID          string `mapstructure:"chain_id"`
	LedgerCacheSize  int    `mapstructure:"ledger_cache_size"`
	EventJournalName string `mapstructure:"event_journal_name"`
	EventJournalDB   string `mapstructure:"event_journal_db"`
}

func DefaultAutoBurnConfig() *AutoBurnConfig {
	return &AutoBurnConfig{
		ChainID:          DefaultChainID,
		LedgerCacheSize:  DefaultLedgerCacheSize,
		EventJournalName: DefaultEventJournalName,
		EventJournalDB:   DefaultEventJournalDB,
	}
}

func (c *AutoBurnConfig) ValidateBasic() error {
	if c.ChainID == "" {
		return fmt.Errorf("chain_id is empty")
	}
	if c.LedgerCacheSize < 0 {
		return fmt.Errorf("ledger_cache_size can't be negative")
	}
	if c.EventJournalName == "" {
		return fmt.Errorf("event_journal_name is empty")
	}
	switch c.EventJournalDB {
	case "goleveldb", "memdb":
	default:
		return fmt.Errorf("unsupported event_journal_db: %s", c.EventJournalDB)
	}
	return nil
}

func DefaultConfig() *Config {
	return DefaultConfigWith(tmcfg.DefaultConfig())
}

func DefaultConfigWith(cfg *tmcfg.Config) *Config {
	return &Config{
		Config:   cfg,
		AutoBurn: DefaultAutoBurnConfig(),
	}
}

// SetRoot sets the home directory of both tendermint and autoburn settings.
func (c *Config) SetRoot(root string) *Config {
	c.Config.SetRoot(root)
	return c
}

func (c *Config) ValidateBasic() error {
	if err := c.Config.ValidateBasic(); err != nil {
		return err
	}
	return c.AutoBurn.ValidateBasic()
}
