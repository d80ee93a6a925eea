package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"xsdnorm/internal/naming"
)

func (a *app) nameCmd() *cobra.Command {
	var internal bool

	cmd := &cobra.Command{
		Use:   "name [names...]",
		Short: "Convert field names between snake_case and the schema convention",
		Long: `Prints the schema spelling of each snake_case name, or the snake_case
spelling of each schema name with --internal. Names are read one per line
from stdin when none is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := naming.External
			if internal {
				dir = naming.Internal
			}

			names := args
			if len(names) == 0 {
				scanner := bufio.NewScanner(a.stdin)
				for scanner.Scan() {
					if line := strings.TrimSpace(scanner.Text()); line != "" {
						names = append(names, line)
					}
				}

				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read names: %w", err)
				}
			}

			conv := naming.Default()
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), conv.Convert(name, dir))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&internal, "internal", "i", false, "Convert schema names to snake_case")

	return cmd
}
