package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func newToolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools the conversational layer can call",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := a.registry.List()
			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), list)
			}

			var b strings.Builder
			for _, t := range list {
				b.WriteString(fmt.Sprintf("%s: %s\n", t.Name, t.Description))
				names := make([]string, 0, len(t.Parameters))
				for n := range t.Parameters {
					names = append(names, n)
				}
				sort.Strings(names)
				for _, n := range names {
					p := t.Parameters[n]
					req := "optional"
					if p.Required {
						req = "required"
					}
					b.WriteString(fmt.Sprintf("  %s (%s, %s) %s\n", n, p.Type, req, p.Description))
				}
			}
			return printText(cmd.OutOrStdout(), strings.TrimSuffix(b.String(), "\n"))
		},
	}
}

func newPersonasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "personas",
		Short: "List the advisor personas",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := a.catalog.List()
			if a.jsonOut {
				return printJSON(cmd.OutOrStdout(), list)
			}

			var b strings.Builder
			for _, p := range list {
				marker := " "
				if p.Key == a.persona.Key {
					marker = "*"
				}
				b.WriteString(fmt.Sprintf("%s %s: %s - %s\n", marker, p.Key, p.Name, p.Description))
				b.WriteString(fmt.Sprintf("    Voice: %s | Personality: %s\n", p.Voice, p.Personality))
			}
			return printText(cmd.OutOrStdout(), strings.TrimSuffix(b.String(), "\n"))
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
