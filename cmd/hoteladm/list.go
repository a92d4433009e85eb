package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/hotelpager"
	"github.com/Alp4ka/hotelpager/client"
	"github.com/Alp4ka/hotelpager/model"
)

type listFlags struct {
	page       int
	size       int
	maxVisible int
	sort       []string
}

func (a *app) list() *cobra.Command {
	var flags listFlags
	names := lo.Map(model.Resources, func(r model.Resource, _ int) string { return r.Name })

	cmd := &cobra.Command{
		Use:       "list <resource>",
		Short:     "print one page of a collection",
		Long:      `list fetches one page of a backend collection and prints its rows, the row range and the page selector.`,
		Example:   "  hoteladm list rooms --page 3 --size 20 --sort 'floor desc'",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			resource, err := model.LookupResource(args[0])
			if err != nil {
				return fmt.Errorf("%w, expected one of: %s", err, strings.Join(names, ", "))
			}

			c, err := client.New(a.cfg.APIBaseURL,
				client.WithToken(a.cfg.APIToken),
				client.WithTimeout(a.cfg.APITimeout),
				client.WithLogger(log.Logger),
			)
			if err != nil {
				return err
			}

			page, err := client.Collection[map[string]any](c, resource.Name).List(cmd.Context(), client.ListParams{
				Page: flags.page,
				Size: flags.size,
				Sort: flags.sort,
			})
			if err != nil {
				return err
			}

			if resource.Name == model.Inventory.Name {
				markLowStock(page.Content)
			}

			return renderPage(cmd.OutOrStdout(), page, flags.maxVisible)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&flags.page, "page", "p", hotelpager.FirstPage, "1-indexed page to fetch")
	fs.IntVarP(&flags.size, "size", "s", hotelpager.DefaultPageSize, "rows per page")
	fs.IntVarP(&flags.maxVisible, "window", "w", hotelpager.DefaultMaxVisible, "page buttons around the current page")
	fs.StringArrayVar(&flags.sort, "sort", nil, "sort key as 'alias [asc|desc]', repeatable")

	return cmd
}

// renderPage prints rows as a table followed by the range summary and the
// page selector.
func renderPage(out io.Writer, page *hotelpager.Page[map[string]any], maxVisible int) error {
	if page.IsEmpty() {
		fmt.Fprintln(out, "no rows")
	} else {
		columns := rowColumns(page.Content)

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(columns, "\t"))
		for _, row := range page.Content {
			fmt.Fprintln(tw, strings.Join(lo.Map(columns, func(col string, _ int) string {
				return formatCell(row[col])
			}), "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	controls := page.State().Controls(maxVisible)
	_, err := fmt.Fprintf(out, "\n%s\n%s\n", controls.Summary(), controls)

	return err
}

// markLowStock adds a "lowStock" column to inventory rows.
func markLowStock(rows []map[string]any) {
	for _, row := range rows {
		quantity, _ := row["quantity"].(float64)
		level, _ := row["reorderLevel"].(float64)

		item := model.InventoryItem{Quantity: int(quantity), ReorderLevel: int(level)}
		row["lowStock"] = item.BelowReorderLevel()
	}
}

// rowColumns returns the union of row keys, "id" first and the rest sorted.
func rowColumns(rows []map[string]any) []string {
	keys := lo.Uniq(lo.FlatMap(rows, func(row map[string]any, _ int) []string { return lo.Keys(row) }))
	slices.Sort(keys)

	if idx := slices.Index(keys, "id"); idx > 0 {
		keys = append([]string{"id"}, slices.Delete(keys, idx, idx+1)...)
	}

	return keys
}

func formatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return "-"
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprint(v)
	}
}
