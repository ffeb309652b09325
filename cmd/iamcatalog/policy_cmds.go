package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"iamcatalog/internal/domain"
	"iamcatalog/internal/outputter"
	"iamcatalog/internal/simulate"
	"iamcatalog/internal/statement"
)

type explainReport struct {
	Actions  []domain.ActionExplanation `json:"actions"`
	Findings []domain.Finding           `json:"findings"`
}

func (c *cli) readDocument(cmd *cobra.Command, location string) (*statement.Document, string, error) {
	p, err := c.app.Publisher(cmd.Context(), location)
	if err != nil {
		return nil, "", err
	}
	data, err := p.Fetch(cmd.Context(), location)
	if err != nil {
		return nil, "", err
	}
	doc, err := statement.ParseDocument(string(data))
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", location, err)
	}
	return doc, string(data), nil
}

func newExplainCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <policy>",
		Short: "Annotate each action of a policy document from the catalog and lint it",
		Long:  "Annotate each action of a policy document from the catalog and lint it. The policy is read from a file, - for stdin, s3://bucket/key or ssm://name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := c.readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			report := explainReport{
				Actions:  statement.Explain(doc, c.app.Registry),
				Findings: make([]domain.Finding, 0),
			}
			for _, s := range doc.Statements() {
				report.Findings = append(report.Findings, statement.Lint(s, c.app.Registry)...)
			}

			if c.jsonOut {
				return outputter.WriteJSON(cmd.OutOrStdout(), report)
			}

			out := cmd.OutOrStdout()
			if err := outputter.Render(out, outputter.ExplanationsTable(report.Actions)); err != nil {
				return err
			}
			outputter.DisplayHeader(out, "FINDINGS: "+outputter.FormatFindingsSummary(report.Findings))
			if len(report.Findings) > 0 {
				return outputter.Render(out, outputter.FindingsTable(report.Findings))
			}
			return nil
		},
	}
}

// simulationActions lists the concrete actions of a document, expanding
// wildcards against the catalog
func simulationActions(c *cli, doc *statement.Document) []string {
	seen := make(map[string]bool)
	actions := make([]string, 0)
	for _, e := range statement.Explain(doc, c.app.Registry) {
		if e.ActionID == "*" || strings.ContainsAny(e.ActionID, "*?") || seen[e.ActionID] {
			continue
		}
		seen[e.ActionID] = true
		actions = append(actions, e.ActionID)
	}
	return actions
}

func newSimulateCmd(c *cli) *cobra.Command {
	var (
		actions     []string
		resources   []string
		contextKeys []string
		concurrency int
		expectAllow bool
	)

	cmd := &cobra.Command{
		Use:   "simulate <policy>...",
		Short: "Run policy documents through the IAM policy simulator",
		Long:  "Run policy documents through the IAM policy simulator. Without --action every action named by the document is simulated, with wildcards expanded from the catalog.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := make(map[string][]string)
			for _, raw := range contextKeys {
				key, values, ok := strings.Cut(raw, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid --context %q: want key=value[,value]", raw)
				}
				entries[key] = append(entries[key], strings.Split(values, ",")...)
			}

			reqs := make([]simulate.Request, 0, len(args))
			for _, location := range args {
				doc, raw, err := c.readDocument(cmd, location)
				if err != nil {
					return err
				}
				req := simulate.Request{PolicyJSON: raw, Actions: actions, Resources: resources, Context: entries}
				if len(req.Actions) == 0 {
					req.Actions = simulationActions(c, doc)
				}
				reqs = append(reqs, req)
			}

			sim, err := c.app.Simulator(cmd.Context(), concurrency)
			if err != nil {
				return err
			}
			outcomes := sim.SimulateAll(cmd.Context(), reqs)

			failed, denied := 0, 0
			out := cmd.OutOrStdout()
			for i, outcome := range outcomes {
				if outcome.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", args[i], outcome.Err)
					continue
				}
				if !simulate.Allowed(outcome.Results) {
					denied++
				}
				if c.jsonOut {
					if err := outputter.WriteJSON(out, outcome.Results); err != nil {
						return err
					}
					continue
				}
				if len(args) > 1 {
					outputter.DisplayHeader(out, args[i])
				}
				if err := outputter.Render(out, outputter.SimulationTable(outcome.Results)); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d simulation(s) failed", failed, len(outcomes))
			}
			if expectAllow && denied > 0 {
				return fmt.Errorf("%d of %d policy document(s) do not allow every simulated action", denied, len(outcomes))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&actions, "action", nil, "Action to simulate (repeatable)")
	flags.StringArrayVar(&resources, "resource", nil, "Resource ARN to simulate against (repeatable)")
	flags.StringArrayVar(&contextKeys, "context", nil, "Context key values, key=value[,value] (repeatable)")
	flags.IntVar(&concurrency, "concurrency", 4, "Maximum parallel simulator calls")
	flags.BoolVar(&expectAllow, "expect-allowed", false, "Fail unless every simulated action is allowed")
	return cmd
}

func newPublishCmd(c *cli) *cobra.Command {
	var (
		to          string
		description string
		lint        bool
	)

	cmd := &cobra.Command{
		Use:   "publish <policy>",
		Short: "Copy a policy document to stdout, a file, S3, SSM or IAM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := to
			if target == "" {
				target = c.app.Settings.Output
			}

			doc, raw, err := c.readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			if lint {
				findings := make([]domain.Finding, 0)
				for _, s := range doc.Statements() {
					findings = append(findings, statement.Lint(s, c.app.Registry)...)
				}
				if outputter.HasErrors(findings) {
					if err := outputter.Render(cmd.ErrOrStderr(), outputter.FindingsTable(findings)); err != nil {
						return err
					}
					return fmt.Errorf("lint: %s", outputter.FormatFindingsSummary(findings))
				}
			}

			p, err := c.app.Publisher(cmd.Context(), target)
			if err != nil {
				return err
			}
			p.Description = description

			where, err := p.Publish(cmd.Context(), target, []byte(raw))
			if err != nil {
				return err
			}
			if where != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "Published %s to %s\n", args[0], where)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&to, "to", "", "Destination (defaults to --output)")
	flags.StringVar(&description, "description", "", "Description for IAM policies and SSM parameters")
	flags.BoolVar(&lint, "lint", true, "Refuse to publish documents with lint errors")
	return cmd
}
