package outputter

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"iamcatalog/internal/catalog"
	"iamcatalog/internal/domain"
)

const descriptionWidth = 60

// DisplayHeader writes a title between horizontal rules
func DisplayHeader(w io.Writer, title string) {
	if title != "" {
		fmt.Fprintln(w, "\n"+strings.Repeat("═", 79))
		fmt.Fprintln(w, title)
	}
	fmt.Fprintln(w, strings.Repeat("═", 79))
}

// Truncate shortens s to width runes, marking the cut with "..."
func Truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 3 || len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// GetSeverityIcon returns the marker shown next to a finding
func GetSeverityIcon(severity domain.Severity) string {
	switch severity {
	case domain.SeverityError:
		return "❌"
	case domain.SeverityWarning:
		return "⚠️"
	case domain.SeverityInfo:
		return "ℹ️"
	default:
		return "❓"
	}
}

// ServicesTable lists every service in the registry
func ServicesTable(reg *catalog.Registry) pterm.TableData {
	data := pterm.TableData{{"Prefix", "Service", "Actions", "Resource types"}}
	for _, def := range reg.Services() {
		data = append(data, []string{
			def.Prefix,
			def.Name,
			strconv.Itoa(len(def.Actions)),
			strconv.Itoa(len(def.ResourceTypes)),
		})
	}
	return data
}

// ActionsTable lists the actions of one service, limited to levels when any are given
func ActionsTable(def *domain.ServiceDefinition, levels ...domain.AccessLevel) pterm.TableData {
	keep := make(map[domain.AccessLevel]bool, len(levels))
	for _, l := range levels {
		keep[l] = true
	}

	data := pterm.TableData{{"Action", "Access level", "Required resources", "Description"}}
	for _, name := range def.Actions.Names() {
		action := def.Actions[name]
		if len(keep) > 0 && !keep[action.AccessLevel] {
			continue
		}
		data = append(data, []string{
			def.ActionID(name),
			string(action.AccessLevel),
			strings.Join(action.RequiredResourceTypes(), ", "),
			Truncate(action.Description, descriptionWidth),
		})
	}
	return data
}

// ResourcesTable lists the resource types of one service
func ResourcesTable(def *domain.ServiceDefinition) pterm.TableData {
	data := pterm.TableData{{"Resource type", "ARN", "Condition keys"}}
	for _, name := range def.ResourceTypes.Names() {
		rt := def.ResourceTypes[name]
		data = append(data, []string{name, rt.ARN, strings.Join(rt.ConditionKeys, ", ")})
	}
	return data
}

// FindingsTable lists lint findings
func FindingsTable(findings []domain.Finding) pterm.TableData {
	data := pterm.TableData{{"Severity", "Action", "Message"}}
	for _, f := range findings {
		data = append(data, []string{
			GetSeverityIcon(f.Severity) + " " + string(f.Severity),
			f.Action,
			f.Message,
		})
	}
	return data
}

// ExplanationsTable lists the catalog entry of each action of a policy
func ExplanationsTable(explanations []domain.ActionExplanation) pterm.TableData {
	data := pterm.TableData{{"Action", "Matched by", "Access level", "Description"}}
	for _, e := range explanations {
		level := string(e.AccessLevel)
		description := Truncate(e.Description, descriptionWidth)
		if !e.Known {
			level = "-"
			description = "not in catalog"
		}
		data = append(data, []string{e.ActionID, e.MatchedBy, level, description})
	}
	return data
}

// SimulationTable lists simulator decisions
func SimulationTable(results []domain.SimulationResult) pterm.TableData {
	data := pterm.TableData{{"Action", "Resource", "Decision"}}
	for _, r := range results {
		icon := "❌"
		if r.Allowed {
			icon = "✅"
		}
		data = append(data, []string{r.Action, r.Resource, icon + " " + r.Decision})
	}
	return data
}

// FormatFindingsSummary counts findings per severity
func FormatFindingsSummary(findings []domain.Finding) string {
	counts := make(map[domain.Severity]int)
	for _, f := range findings {
		counts[f.Severity]++
	}
	return fmt.Sprintf("%d error(s), %d warning(s), %d info",
		counts[domain.SeverityError], counts[domain.SeverityWarning], counts[domain.SeverityInfo])
}

// HasErrors reports whether any finding is an error
func HasErrors(findings []domain.Finding) bool {
	for _, f := range findings {
		if f.Severity == domain.SeverityError {
			return true
		}
	}
	return false
}

// Render writes data to w as a left-aligned table with a header row
func Render(w io.Writer, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithLeftAlignment().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// WriteJSON writes v as indented JSON
func WriteJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
