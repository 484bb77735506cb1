package commands

import (
	"github.com/beatoz/autoburn/node"
	"github.com/spf13/cobra"
)

func NewMintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint",
		Short: "Credit tokens to an account of the local token ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := addressFlag(cmd.Flags(), "token")
			if err != nil {
				return err
			}
			account, err := addressFlag(cmd.Flags(), "account")
			if err != nil {
				return err
			}
			amount, err := uint64Flag(cmd.Flags(), "amount")
			if err != nil {
				return err
			}
			return withNode(func(burnNode *node.BurnNode) error {
				if xerr := burnNode.Mint(token, account, amount); xerr != nil {
					return xerr
				}
				logger.Info("minted", "token", token, "account", account, "amount", amount)
				return nil
			})
		},
	}
	cmd.Flags().String("token", "", "address of the token (hex)")
	cmd.Flags().String("account", "", "address of the account (hex)")
	cmd.Flags().String("amount", "0", "amount to credit")
	return cmd
}
