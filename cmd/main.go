package main

import (
	"os"
	"path/filepath"

	"github.com/beatoz/autoburn/cmd/commands"
	"github.com/tendermint/tendermint/libs/cli"
)

func main() {
	commands.RootCmd.AddCommand(
		commands.NewInitFilesCmd(),
		commands.NewBurnConfigCmd(),
		commands.NewBurnCmd(),
		commands.NewMintCmd(),
		commands.NewEventsCmd(),
		commands.VersionCmd,
	)

	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	executor := cli.PrepareBaseCmd(commands.RootCmd, "AUTOBURN", filepath.Join(home, ".autoburn"))
	if err := executor.Execute(); err != nil {
		panic(err)
	}
}
