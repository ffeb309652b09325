package outputter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iamcatalog/internal/catalog"
	"iamcatalog/internal/domain"
)

func TestServicesTable(t *testing.T) {
	reg := catalog.Default()
	data := ServicesTable(reg)

	require.Len(t, data, reg.Len()+1)
	assert.Equal(t, []string{"Prefix", "Service", "Actions", "Resource types"}, data[0])

	var dlm []string
	for _, row := range data[1:] {
		if row[0] == "dlm" {
			dlm = row
		}
	}
	require.NotNil(t, dlm)
	assert.Equal(t, "8", dlm[2])
	assert.Equal(t, "1", dlm[3])
}

func TestActionsTable_FilterByAccessLevel(t *testing.T) {
	def := catalog.Default().MustLookup("dlm")

	all := ActionsTable(def)
	assert.Len(t, all, len(def.Actions)+1)

	tagging := ActionsTable(def, domain.AccessLevelTagging)
	require.Len(t, tagging, 3)
	assert.Equal(t, "dlm:TagResource", tagging[1][0])
	assert.Equal(t, "dlm:UntagResource", tagging[2][0])
	assert.Equal(t, "policy", tagging[1][2])
}

func TestResourcesTable(t *testing.T) {
	def := catalog.Default().MustLookup("wafv2")
	data := ResourcesTable(def)

	require.Len(t, data, len(def.ResourceTypes)+1)
	for _, row := range data[1:] {
		assert.True(t, strings.HasPrefix(row[1], "arn:${Partition}:"), row[1])
	}
}

func TestFindingsTableAndSummary(t *testing.T) {
	findings := []domain.Finding{
		{Severity: domain.SeverityError, Action: "dlm:Nope", Message: "dlm has no action named Nope"},
		{Severity: domain.SeverityWarning, Action: "*", Message: "grants every action"},
		{Severity: domain.SeverityInfo, Message: "no resources"},
	}

	data := FindingsTable(findings)
	require.Len(t, data, 4)
	assert.Equal(t, "❌ ERROR", data[1][0])
	assert.Equal(t, "1 error(s), 1 warning(s), 1 info", FormatFindingsSummary(findings))
	assert.True(t, HasErrors(findings))
	assert.False(t, HasErrors(findings[1:]))
}

func TestExplanationsTable_Unknown(t *testing.T) {
	data := ExplanationsTable([]domain.ActionExplanation{
		{ActionID: "dlm:GetLifecyclePolicy", Known: true, AccessLevel: domain.AccessLevelRead, Description: "Grants permission"},
		{ActionID: "foo:Bar", Known: false},
	})

	assert.Equal(t, "Read", data[1][2])
	assert.Equal(t, "-", data[2][2])
	assert.Equal(t, "not in catalog", data[2][3])
}

func TestSimulationTable(t *testing.T) {
	data := SimulationTable([]domain.SimulationResult{
		{Action: "dlm:GetLifecyclePolicy", Resource: "*", Decision: "allowed", Allowed: true},
		{Action: "dlm:DeleteLifecyclePolicy", Resource: "*", Decision: "implicitDeny"},
	})
	assert.Equal(t, "✅ allowed", data[1][2])
	assert.Equal(t, "❌ implicitDeny", data[2][2])
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "abc", Truncate("abc", 2))
}

func TestRender(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, ResourcesTable(catalog.Default().MustLookup("dlm"))))
	assert.Contains(t, buf.String(), "Resource type")
	assert.Contains(t, buf.String(), "arn:${Partition}:dlm:${Region}:${Account}:policy/${ResourceName}")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, domain.Finding{Severity: domain.SeverityInfo, Message: "m"}))
	assert.JSONEq(t, `{"severity":"INFO","message":"m"}`, buf.String())
}

func TestDisplayHeader(t *testing.T) {
	var buf bytes.Buffer
	DisplayHeader(&buf, "FINDINGS")
	assert.Contains(t, buf.String(), "FINDINGS")
	assert.Equal(t, 4, strings.Count(buf.String(), "\n"))
}
