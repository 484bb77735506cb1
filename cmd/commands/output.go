package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	tmjson "github.com/tendermint/tendermint/libs/json"
)

func printJSON(cmd *cobra.Command, v interface{}) error {
	bz, err := tmjson.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
