package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) orderMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ordermap",
		Short: "Inspect the order-map artifact",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "check",
			Short: "Load and validate the order-map artifact",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := a.loadOrderMap()
				if err != nil {
					return err
				}

				if m.Len() == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: no types declared, records keep their order\n", a.cfg.OrderMap)
					return nil
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d types\n", a.cfg.OrderMap, m.Len())

				return nil
			},
		},
		&cobra.Command{
			Use:   "show TYPE...",
			Short: "Print the declared child sequence of schema types",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := a.loadOrderMap()
				if err != nil {
					return err
				}

				var missing []string

				for _, typeName := range args {
					fields, ok := m.Lookup(typeName)
					if !ok {
						missing = append(missing, typeName)
						continue
					}

					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", typeName, strings.Join(fields, ", "))
				}

				if len(missing) > 0 {
					return fmt.Errorf("unknown types: %s", strings.Join(missing, ", "))
				}

				return nil
			},
		},
	)

	return cmd
}
