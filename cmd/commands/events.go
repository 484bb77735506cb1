package commands

import (
	"github.com/beatoz/autoburn/node"
	"github.com/spf13/cobra"
)

func NewEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List journaled burn events",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetUint64("from")
			limit, _ := cmd.Flags().GetInt("limit")
			abci, _ := cmd.Flags().GetBool("abci")

			return withNode(func(burnNode *node.BurnNode) error {
				entries, err := burnNode.Events(from, limit)
				if err != nil {
					return err
				}
				if !abci {
					return printJSON(cmd, entries)
				}
				for _, entry := range entries {
					if err := printJSON(cmd, entry.Event.ToABCIEvent()); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().Uint64("from", 1, "sequence of the first event")
	cmd.Flags().Int("limit", 100, "maximum number of events; 0 means no limit")
	cmd.Flags().Bool("abci", false, "print the events as abci events")
	return cmd
}
