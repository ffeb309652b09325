package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"iamcatalog/internal/domain"
	"iamcatalog/internal/outputter"
)

type serviceSummary struct {
	Prefix        string `json:"prefix"`
	Name          string `json:"name"`
	Documentation string `json:"documentation_url"`
	Actions       int    `json:"actions"`
	ResourceTypes int    `json:"resource_types"`
}

func newServicesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List the services in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.jsonOut {
				summaries := make([]serviceSummary, 0, c.app.Registry.Len())
				for _, def := range c.app.Registry.Services() {
					summaries = append(summaries, serviceSummary{
						Prefix:        def.Prefix,
						Name:          def.Name,
						Documentation: def.DocumentationURL,
						Actions:       len(def.Actions),
						ResourceTypes: len(def.ResourceTypes),
					})
				}
				return outputter.WriteJSON(cmd.OutOrStdout(), summaries)
			}
			return outputter.Render(cmd.OutOrStdout(), outputter.ServicesTable(c.app.Registry))
		},
	}
}

func newActionsCmd(c *cli) *cobra.Command {
	var levels []string

	cmd := &cobra.Command{
		Use:   "actions <prefix>",
		Short: "List the actions of a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := c.app.Registry.Lookup(args[0])
			if err != nil {
				return err
			}
			accessLevels, err := parseAccessLevels(levels)
			if err != nil {
				return err
			}

			if c.jsonOut {
				table := def.ActionTable()
				if len(accessLevels) > 0 {
					keep := make(map[domain.AccessLevel]bool)
					for _, l := range accessLevels {
						keep[l] = true
					}
					for name, action := range table {
						if !keep[action.AccessLevel] {
							delete(table, name)
						}
					}
				}
				return outputter.WriteJSON(cmd.OutOrStdout(), table)
			}
			return outputter.Render(cmd.OutOrStdout(), outputter.ActionsTable(def, accessLevels...))
		},
	}
	cmd.Flags().StringSliceVar(&levels, "access-level", nil, "Only list actions with these access levels")
	return cmd
}

func newResourcesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "resources <prefix>",
		Short: "List the resource types of a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := c.app.Registry.Lookup(args[0])
			if err != nil {
				return err
			}
			if c.jsonOut {
				return outputter.WriteJSON(cmd.OutOrStdout(), def.ResourceTypeTable())
			}
			return outputter.Render(cmd.OutOrStdout(), outputter.ResourcesTable(def))
		},
	}
}

// parseAccessLevels accepts access level names in any case, with "-" or "_"
// standing in for spaces
func parseAccessLevels(names []string) ([]domain.AccessLevel, error) {
	levels := make([]domain.AccessLevel, 0, len(names))
	for _, name := range names {
		normalized := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(name))
		found := false
		for _, known := range domain.AccessLevels {
			if strings.EqualFold(normalized, string(known)) {
				levels = append(levels, known)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown access level %q", name)
		}
	}
	return levels, nil
}
