package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"iamcatalog/internal/outputter"
	"iamcatalog/internal/statement"
)

type statementOptions struct {
	deny       bool
	sid        string
	resources  []string
	on         []string
	levels     []string
	conditions []string
	lint       bool
}

func newStatementCmd(c *cli) *cobra.Command {
	var opts statementOptions

	cmd := &cobra.Command{
		Use:   "statement <prefix> [Action...]",
		Short: "Build a policy statement from catalog actions and write the policy document",
		Long: `Build a policy statement from catalog actions and write the policy document.

Resources are given either as ARNs with --resource or as resource types of the
service with --on, for example:

  iamcatalog statement wafv2 GetWebACL UpdateWebACL \
    --on "webacl:Scope=regional,Name=edge,Id=1234" \
    --condition "StringEquals aws:ResourceTag/team=edge"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.app.Service(args[0])
			if err != nil {
				return err
			}

			for _, name := range args[1:] {
				svc.AddAction(name)
			}
			levels, err := parseAccessLevels(opts.levels)
			if err != nil {
				return err
			}
			svc.AddAccessLevel(levels...)

			if len(svc.ActionIDs()) == 0 {
				return fmt.Errorf("no actions selected: name actions or pass --access-level")
			}

			if opts.deny {
				svc.Deny()
			}
			if opts.sid != "" {
				svc.WithSid(opts.sid)
			}
			svc.On(opts.resources...)

			for _, on := range opts.on {
				resourceType, values, err := parseOn(on)
				if err != nil {
					return err
				}
				if err := svc.OnResource(resourceType, values); err != nil {
					return err
				}
			}

			for _, raw := range opts.conditions {
				operator, key, values, err := parseCondition(raw)
				if err != nil {
					return err
				}
				svc.If(operator, key, values...)
			}

			if opts.lint {
				findings := svc.Validate()
				if len(findings) > 0 {
					if err := outputter.Render(cmd.ErrOrStderr(), outputter.FindingsTable(findings)); err != nil {
						return err
					}
				}
				if outputter.HasErrors(findings) {
					return fmt.Errorf("lint: %s", outputter.FormatFindingsSummary(findings))
				}
			}

			document, err := statement.NewDocument(svc.Statement).ToJSON()
			if err != nil {
				return err
			}

			p, err := c.app.Publisher(cmd.Context(), c.app.Settings.Output)
			if err != nil {
				return err
			}
			where, err := p.Publish(cmd.Context(), c.app.Settings.Output, []byte(document))
			if err != nil {
				return err
			}
			if where != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote policy document to %s\n", where)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.deny, "deny", false, "Deny instead of allow")
	flags.StringVar(&opts.sid, "sid", "", "Statement ID")
	flags.StringArrayVar(&opts.resources, "resource", nil, "Resource ARN (repeatable)")
	flags.StringArrayVar(&opts.on, "on", nil, `Resource type and ARN values, "type:Key=Value,Key=Value" (repeatable)`)
	flags.StringSliceVar(&opts.levels, "access-level", nil, "Add every action with these access levels")
	flags.StringArrayVar(&opts.conditions, "condition", nil, `Condition "Operator key=value[,value]" (repeatable)`)
	flags.BoolVar(&opts.lint, "lint", false, "Check the statement against the catalog and fail on errors")
	return cmd
}

// parseOn parses "type:Key=Value,Key=Value"
func parseOn(raw string) (string, map[string]string, error) {
	resourceType, rest, _ := strings.Cut(raw, ":")
	resourceType = strings.TrimSpace(resourceType)
	if resourceType == "" {
		return "", nil, fmt.Errorf("invalid --on %q: missing resource type", raw)
	}

	values := make(map[string]string)
	if strings.TrimSpace(rest) == "" {
		return resourceType, values, nil
	}
	for _, pair := range strings.Split(rest, ",") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return "", nil, fmt.Errorf("invalid --on %q: %q is not Key=Value", raw, pair)
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return resourceType, values, nil
}

// parseCondition parses "Operator key=value[,value]"
func parseCondition(raw string) (string, string, []string, error) {
	head, rawValues, ok := strings.Cut(raw, "=")
	if !ok {
		return "", "", nil, fmt.Errorf("invalid --condition %q: missing =", raw)
	}
	fields := strings.Fields(head)
	if len(fields) != 2 {
		return "", "", nil, fmt.Errorf("invalid --condition %q: want \"Operator key=value\"", raw)
	}

	values := make([]string, 0)
	for _, v := range strings.Split(rawValues, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return "", "", nil, fmt.Errorf("invalid --condition %q: no values", raw)
	}
	return fields[0], fields[1], values, nil
}
