package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/influencer-admin/internal/dashboard"
	"github.com/unclebandit/influencer-admin/internal/model"
	"github.com/unclebandit/influencer-admin/internal/seed"
)

func TestFormatter(t *testing.T) {
	f := NewFormatter()

	assert.Equal(t, "$15,000", f.Currency(decimal.NewFromInt(15000)))
	assert.Equal(t, "$0", f.Currency(decimal.Zero))
	assert.Equal(t, "$1,234.50", f.Currency(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "-$20", f.Currency(decimal.NewFromInt(-20)))
	assert.Equal(t, "1,200,000", f.Count(1200000))
	assert.Equal(t, "6.54%", f.Percent(0.0654))
	assert.Equal(t, "0.00%", f.Percent(0))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "N/A", Date(model.Date{}))
	assert.Equal(t, "N/A", DatePtr(nil))
	d := model.NewDate(2025, time.March, 15)
	assert.Equal(t, "2025-03-15", DatePtr(&d))
}

func TestRender_Seed(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	view := dashboard.Build(seed.Dataset(), now)

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, view))
	out := buf.String()

	for _, want := range []string{
		"== Overview ==",
		"$11,500",
		"Sofia Reyes",
		"2 upcoming",
		"C#1",
		"$15,000",
		"== Brands ==",
		"TechNova",
		"== Posts ==",
		"6.54%",
		"Campaign #1",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRender_EmptyView(t *testing.T) {
	view := dashboard.Build(model.EmptySnapshot(), time.Now())

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, view, SectionOverview))
	assert.Contains(t, buf.String(), "No deadlines")
	assert.Contains(t, buf.String(), "$0")
}

func TestRender_SingleSection(t *testing.T) {
	view := dashboard.Build(seed.Dataset(), time.Now())

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, view, SectionCampaigns))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "== Campaigns =="))
	assert.NotContains(t, out, "== Brands ==")
}

func TestBudgetChartScalesToLargest(t *testing.T) {
	var buf bytes.Buffer
	err := New().budgetChart(&buf, []dashboard.BudgetPoint{
		{Label: "C#1", Budget: decimal.NewFromInt(100)},
		{Label: "C#2", Budget: decimal.NewFromInt(50)},
		{Label: "C#3", Budget: decimal.Zero},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, barWidth, strings.Count(lines[0], "█"))
	assert.Equal(t, barWidth/2, strings.Count(lines[1], "█"))
	assert.Equal(t, 0, strings.Count(lines[2], "█"))
}

func TestParseSection(t *testing.T) {
	s, err := ParseSection("Posts")
	require.NoError(t, err)
	assert.Equal(t, SectionPosts, s)

	_, err = ParseSection("reports")
	assert.Error(t, err)
}

func TestActivity(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Activity(&buf, nil))
	assert.Equal(t, "No activity yet.\n", buf.String())

	buf.Reset()
	require.NoError(t, New().Activity(&buf, []model.Activity{{
		Action:     model.ActionDelete,
		Summary:    "Deleted campaign #1",
		OccurredAt: time.Date(2025, time.March, 1, 9, 30, 0, 0, time.UTC),
	}}))
	assert.Contains(t, buf.String(), "2025-03-01 09:30:00")
	assert.Contains(t, buf.String(), "Deleted campaign #1")
}
