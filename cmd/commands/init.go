package commands

import (
	"os"
	"path/filepath"
	"text/template"

	cfg "github.com/beatoz/autoburn/cmd/config"
	"github.com/spf13/cobra"
	tmcfg "github.com/tendermint/tendermint/config"
	tmos "github.com/tendermint/tendermint/libs/os"
)

var (
	autoburnChainID = cfg.DefaultChainID
)

const autoburnConfigTemplate = `
#######################################################
###             AutoBurn Configuration              ###
#######################################################
[autoburn]

# Chain id recorded in every block context
chain_id = "{{ .ChainID }}"

# Cache size of the burn config and supply ledgers
ledger_cache_size = {{ .LedgerCacheSize }}

# Database name and backend (goleveldb | memdb) of the burn event journal
event_journal_name = "{{ .EventJournalName }}"
event_journal_db = "{{ .EventJournalDB }}"
`

var autoburnTmpl = template.Must(template.New("autoburn").Parse(autoburnConfigTemplate))

func NewInitFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an autoburn home directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			rootConfig.AutoBurn.ChainID = autoburnChainID
			if err := InitFilesWith(rootConfig); err != nil {
				return err
			}
			logger.Info("initialized", "root", rootConfig.RootDir, "chainId", autoburnChainID)
			return nil
		},
	}
	AddInitFlags(cmd)
	return cmd
}

func AddInitFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&autoburnChainID,
		"chain_id",
		autoburnChainID,
		"the id of chain recorded in every block context (e.g. mainnet, testnet, devnet and others)")
}

// InitFilesWith creates the directories of config.RootDir and writes config.toml
// unless it already exists.
func InitFilesWith(config *cfg.Config) error {
	if err := config.AutoBurn.ValidateBasic(); err != nil {
		return err
	}
	if err := tmos.EnsureDir(config.RootDir, tmcfg.DefaultDirPerm); err != nil {
		return err
	}
	if err := tmos.EnsureDir(filepath.Join(config.RootDir, "config"), tmcfg.DefaultDirPerm); err != nil {
		return err
	}
	if err := tmos.EnsureDir(config.DBDir(), tmcfg.DefaultDirPerm); err != nil {
		return err
	}

	configFilePath := filepath.Join(config.RootDir, "config", "config.toml")
	if tmos.FileExists(configFilePath) {
		logger.Info("Found config file", "path", configFilePath)
		return nil
	}

	tmcfg.WriteConfigFile(configFilePath, config.Config)

	f, err := os.OpenFile(configFilePath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := autoburnTmpl.Execute(f, config.AutoBurn); err != nil {
		return err
	}
	logger.Info("Generated config file", "path", configFilePath)
	return nil
}
