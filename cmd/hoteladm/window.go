package main

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/hotelpager"
)

func window() *cobra.Command {
	var maxVisible int
	var controls bool

	cmd := &cobra.Command{
		Use:     "window <current> <total>",
		Short:   "print the page selector for a position",
		Example: "  hoteladm window 10 20 --max 5",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid current page '%s': %w", args[0], err)
			}
			total, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid total pages '%s': %w", args[1], err)
			}

			if !controls {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), hotelpager.ComputeWindow(current, total, maxVisible))
				return err
			}

			state := hotelpager.NewPaginationState(hotelpager.DefaultPageSize).Refresh(total, 0)
			// Same clamping as ComputeWindow so both renderings agree.
			state.SetPage(lo.Clamp(current, hotelpager.FirstPage, state.TotalPages))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), state.Controls(maxVisible))
			return err
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&maxVisible, "max", "m", hotelpager.DefaultMaxVisible, "page buttons around the current page")
	fs.BoolVar(&controls, "controls", false, "render the full bar with arrows and the current page marked")

	return cmd
}
