package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"murmur/internal/config"
	"murmur/internal/deps"
)

func newDepsCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of external tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Required(cfg))

			rows := make([][]string, 0, len(statuses))
			missing := 0
			for _, status := range statuses {
				state := "found"
				if !status.Available {
					state = status.Detail
					missing++
				}
				rows = append(rows, []string{status.Name, status.Command, state, status.Description})
			}

			fmt.Println(renderTable(
				[]string{"Tool", "Command", "Status", "Used for"},
				rows,
			))

			if missing > 0 {
				printStatus(statusWarn, fmt.Sprintf("%d tool(s) missing", missing))
				return nil
			}
			printStatus(statusOK, "all external tools available")
			return nil
		},
	}
}
