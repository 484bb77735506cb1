package commands

import (
	"fmt"
	"os"

	"github.com/beatoz/autoburn/ctrlers/burn"
	"github.com/beatoz/autoburn/libs"
	"github.com/beatoz/autoburn/node"
	"github.com/spf13/cobra"
)

func NewBurnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burn",
		Short: "Execute an autonomous burn",
		Long: "Execute an autonomous burn under the burn config of --authority and --token.\n" +
			"With --dry-run the burn is only simulated and nothing is stored.",
		RunE: runBurn,
	}
	addPairFlags(cmd)
	cmd.Flags().String("caller", "", "address of the caller (hex); defaults to --authority")
	cmd.Flags().String("account", "", "address of the token account to burn from (hex); defaults to --authority")
	cmd.Flags().String("amount", "0", "amount to burn")
	cmd.Flags().String("profit", "0", "reported profit")
	cmd.Flags().String("proof", "", "payment proof")
	cmd.Flags().Bool("dry-run", false, "simulate the burn without storing anything")
	cmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	return cmd
}

func runBurn(cmd *cobra.Command, args []string) error {
	req, err := burnRequestFromFlags(cmd)
	if err != nil {
		return err
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")

	if !dryRun && !yes && libs.IsTerminal(os.Stdin) {
		prompt := fmt.Sprintf("burn %d of token %v from %v?", req.Amount, req.Token, req.Account)
		if !libs.Confirm(prompt, cmd.InOrStdin(), cmd.OutOrStdout()) {
			return fmt.Errorf("aborted")
		}
	}

	return withNode(func(burnNode *node.BurnNode) error {
		exec := burnNode.ExecuteAutonomousBurn
		if dryRun {
			exec = burnNode.SimulateAutonomousBurn
		}
		evt, xerr := exec(req)
		if xerr != nil {
			return xerr
		}
		return printJSON(cmd, evt)
	})
}

func burnRequestFromFlags(cmd *cobra.Command) (*burn.BurnRequest, error) {
	flags := cmd.Flags()

	authority, err := addressFlag(flags, "authority")
	if err != nil {
		return nil, err
	}
	token, err := addressFlag(flags, "token")
	if err != nil {
		return nil, err
	}
	req := &burn.BurnRequest{
		Caller:    authority,
		Authority: authority,
		Token:     token,
		Account:   authority,
	}
	if flags.Changed("caller") {
		if req.Caller, err = addressFlag(flags, "caller"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("account") {
		if req.Account, err = addressFlag(flags, "account"); err != nil {
			return nil, err
		}
	}
	if req.Amount, err = uint64Flag(flags, "amount"); err != nil {
		return nil, err
	}
	if req.ProfitAmount, err = uint64Flag(flags, "profit"); err != nil {
		return nil, err
	}
	proof, _ := flags.GetString("proof")
	req.Proof = []byte(proof)
	return req, nil
}
