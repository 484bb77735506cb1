package commands

import (
	"fmt"
	"os"

	cfg "github.com/beatoz/autoburn/cmd/config"
	"github.com/beatoz/autoburn/node"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	tmcfg "github.com/tendermint/tendermint/config"
	"github.com/tendermint/tendermint/libs/cli"
	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	rootConfig = cfg.DefaultConfig()
	logger     = log.NewTMLogger(log.NewSyncWriter(os.Stdout))
)

func init() {
	registerFlagsRootCmd(RootCmd)
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log_level", rootConfig.LogLevel, "log level")
}

// ParseConfig retrieves the default environment configuration,
// sets up the autoburn root and ensures that the root exists
func ParseConfig(cmd *cobra.Command) (*cfg.Config, error) {
	conf := cfg.DefaultConfig()
	if err := viper.Unmarshal(conf.Config); err != nil {
		return nil, err
	}
	if viper.IsSet("autoburn") {
		if err := viper.UnmarshalKey("autoburn", conf.AutoBurn); err != nil {
			return nil, err
		}
	}

	var home string
	if os.Getenv("AUTOBURNHOME") != "" {
		home = os.Getenv("AUTOBURNHOME")
	} else {
		var err error
		home, err = cmd.Flags().GetString(cli.HomeFlag)
		if err != nil {
			return nil, err
		}
	}

	conf.RootDir = home
	conf.SetRoot(conf.RootDir)
	if err := conf.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("error in config file: %v", err)
	}
	return conf, nil
}

// RootCmd is the root command for autoburn.
var RootCmd = &cobra.Command{
	Use:   "autoburn",
	Short: "Profit-gated autonomous token burns",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if cmd.Name() == VersionCmd.Name() {
			return nil
		}

		rootConfig, err = ParseConfig(cmd)
		if err != nil {
			return err
		}

		if rootConfig.LogFormat == tmcfg.LogFormatJSON {
			logger = log.NewTMJSONLogger(log.NewSyncWriter(os.Stdout))
		}

		logger, err = tmflags.ParseLogLevel(rootConfig.LogLevel, logger, tmcfg.DefaultLogLevel)
		if err != nil {
			return err
		}

		if viper.GetBool(cli.TraceFlag) {
			logger = log.NewTracingLogger(logger)
		}

		logger = logger.With("module", "main")
		return nil
	},
}

// withNode opens the node under the current root, runs fn and stops the node.
func withNode(fn func(*node.BurnNode) error) error {
	burnNode, err := node.NewBurnNode(rootConfig, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := burnNode.Stop(); err != nil {
			logger.Error("failed to stop node", "error", err)
		}
	}()
	return fn(burnNode)
}
