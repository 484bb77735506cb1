package commands

import (
	"fmt"

	"github.com/beatoz/autoburn/ctrlers/burn"
	"github.com/beatoz/autoburn/node"
	"github.com/beatoz/autoburn/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func NewBurnConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"burn-config"},
		Short:   "Manage burn configs",
	}
	cmd.AddCommand(
		newBurnConfigInitCmd(),
		newBurnConfigUpdateCmd(),
		newBurnConfigShowCmd(),
	)
	return cmd
}

func addPairFlags(cmd *cobra.Command) {
	cmd.Flags().String("authority", "", "address of the burn authority (hex)")
	cmd.Flags().String("token", "", "address of the token (hex)")
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().String("threshold", "0", "minimum profit that allows a burn")
	cmd.Flags().String("percent", "", "share of the profit to burn in percent (e.g. 5, 12.5)")
	cmd.Flags().String("bps", "", "share of the profit to burn in basis points (0..10000)")
	cmd.Flags().String("min", "0", "minimum amount of a single burn")
}

func addressFlag(flags *pflag.FlagSet, name string) (types.Address, error) {
	s, err := flags.GetString(name)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, fmt.Errorf("--%s is required", name)
	}
	addr, err := types.HexToAddress(s)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return addr, nil
}

func uint64Flag(flags *pflag.FlagSet, name string) (uint64, error) {
	s, err := flags.GetString(name)
	if err != nil {
		return 0, err
	}
	v, err := types.ParseUint64(s)
	if err != nil {
		return 0, fmt.Errorf("--%s: %w", name, err)
	}
	return v, nil
}

// percentageFlag reads either --percent or --bps. ok is false if neither is set.
func percentageFlag(flags *pflag.FlagSet) (bps uint16, ok bool, err error) {
	pctSet, bpsSet := flags.Changed("percent"), flags.Changed("bps")
	switch {
	case pctSet && bpsSet:
		return 0, false, fmt.Errorf("--percent and --bps are exclusive")
	case pctSet:
		s, _ := flags.GetString("percent")
		bps, err = types.PercentToBps(s)
	case bpsSet:
		s, _ := flags.GetString("bps")
		bps, err = types.ParseBasisPoints(s)
	default:
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return bps, true, nil
}

func newBurnConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the burn config of an authority and a token",
		RunE: func(cmd *cobra.Command, args []string) error {
			authority, err := addressFlag(cmd.Flags(), "authority")
			if err != nil {
				return err
			}
			token, err := addressFlag(cmd.Flags(), "token")
			if err != nil {
				return err
			}
			threshold, err := uint64Flag(cmd.Flags(), "threshold")
			if err != nil {
				return err
			}
			minBurn, err := uint64Flag(cmd.Flags(), "min")
			if err != nil {
				return err
			}
			bps, ok, err := percentageFlag(cmd.Flags())
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("--percent or --bps is required")
			}

			return withNode(func(burnNode *node.BurnNode) error {
				bcfg, xerr := burnNode.InitializeBurnConfig(authority, token, threshold, bps, minBurn)
				if xerr != nil {
					return xerr
				}
				return printJSON(cmd, bcfg)
			})
		},
	}
	addPairFlags(cmd)
	addParamFlags(cmd)
	return cmd
}

func newBurnConfigUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the parameters given by flags; the others are kept",
		RunE: func(cmd *cobra.Command, args []string) error {
			authority, err := addressFlag(cmd.Flags(), "authority")
			if err != nil {
				return err
			}
			token, err := addressFlag(cmd.Flags(), "token")
			if err != nil {
				return err
			}
			caller := authority
			if cmd.Flags().Changed("caller") {
				if caller, err = addressFlag(cmd.Flags(), "caller"); err != nil {
					return err
				}
			}

			upd := &burn.BurnConfigUpdate{}
			if cmd.Flags().Changed("threshold") {
				v, err := uint64Flag(cmd.Flags(), "threshold")
				if err != nil {
					return err
				}
				upd.ProfitThreshold = &v
			}
			if cmd.Flags().Changed("min") {
				v, err := uint64Flag(cmd.Flags(), "min")
				if err != nil {
					return err
				}
				upd.MinBurnAmount = &v
			}
			bps, ok, err := percentageFlag(cmd.Flags())
			if err != nil {
				return err
			}
			if ok {
				upd.BurnPercentage = &bps
			}

			return withNode(func(burnNode *node.BurnNode) error {
				bcfg, xerr := burnNode.UpdateBurnConfig(caller, authority, token, upd)
				if xerr != nil {
					return xerr
				}
				return printJSON(cmd, bcfg)
			})
		},
	}
	addPairFlags(cmd)
	addParamFlags(cmd)
	cmd.Flags().String("caller", "", "address of the caller (hex); defaults to --authority")
	return cmd
}

func newBurnConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the burn config of an authority and a token",
		RunE: func(cmd *cobra.Command, args []string) error {
			authority, err := addressFlag(cmd.Flags(), "authority")
			if err != nil {
				return err
			}
			token, err := addressFlag(cmd.Flags(), "token")
			if err != nil {
				return err
			}
			return withNode(func(burnNode *node.BurnNode) error {
				bcfg, xerr := burnNode.FindBurnConfig(authority, token)
				if xerr != nil {
					return xerr
				}
				return printJSON(cmd, bcfg)
			})
		},
	}
	addPairFlags(cmd)
	return cmd
}
