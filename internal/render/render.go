// Package render writes a dashboard view as plain text.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/unclebandit/influencer-admin/internal/dashboard"
	"github.com/unclebandit/influencer-admin/internal/model"
)

type Section string

const (
	SectionOverview       Section = "overview"
	SectionBrands         Section = "brands"
	SectionInfluencers    Section = "influencers"
	SectionCampaigns      Section = "campaigns"
	SectionCollaborations Section = "collaborations"
	SectionPayments       Section = "payments"
	SectionPosts          Section = "posts"
)

// AllSections is the render order when none are requested.
var AllSections = []Section{
	SectionOverview,
	SectionBrands,
	SectionInfluencers,
	SectionCampaigns,
	SectionCollaborations,
	SectionPayments,
	SectionPosts,
}

func ParseSection(name string) (Section, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range AllSections {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", name)
}

const barWidth = 30

type Renderer struct {
	f Formatter
}

func New() *Renderer {
	return &Renderer{f: NewFormatter()}
}

// Render writes the requested sections of v, or all of them.
func (r *Renderer) Render(w io.Writer, v dashboard.View, sections ...Section) error {
	if len(sections) == 0 {
		sections = AllSections
	}
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		var err error
		switch s {
		case SectionOverview:
			err = r.overview(w, v)
		case SectionBrands:
			err = r.brands(w, v.Brands)
		case SectionInfluencers:
			err = r.influencers(w, v.Influencers)
		case SectionCampaigns:
			err = r.campaigns(w, v.Campaigns)
		case SectionCollaborations:
			err = r.collaborations(w, v.Collaborations)
		case SectionPayments:
			err = r.payments(w, v.Payments)
		case SectionPosts:
			err = r.posts(w, v.Posts)
		default:
			err = fmt.Errorf("unknown section %q", s)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) overview(w io.Writer, v dashboard.View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "== Overview ==")
	fmt.Fprintf(tw, "Brands\t%d\n", v.KPIs.Brands)
	fmt.Fprintf(tw, "Active campaigns\t%d\n", v.KPIs.ActiveCampaigns)
	fmt.Fprintf(tw, "Total spend\t%s\n", r.f.Currency(v.KPIs.TotalSpend))
	fmt.Fprintf(tw, "Top influencer\t%s\n", v.KPIs.TopInfluencer)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n-- Upcoming deadlines (%s) --\n", v.DeadlineLabel)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, d := range v.Deadlines {
		fmt.Fprintf(tw, "%s\t%s\tCampaign #%s\t%s\n", Date(d.Due), d.Influencer, d.CampaignRef, d.Objective)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n-- Campaign budgets --")
	if err := r.budgetChart(w, v.BudgetSeries); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n-- Recent posts --")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range v.RecentPosts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s likes\treach %s\n",
			Date(p.PostDate), orNA(p.PostType), p.Influencer, r.f.Count(p.Likes), r.f.Count(p.Reach))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n-- Top influencers --")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, inf := range v.TopInfluencers {
		fmt.Fprintf(tw, "%d.\t%s\t%s / %s\t%s\n", i+1, inf.Name, orNA(inf.Niche), orNA(inf.Platform), r.f.Count(inf.Followers))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n-- Recent payments --")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range v.RecentPayments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", Date(p.Date), p.Influencer, r.f.Currency(p.Amount), orNA(p.Mode))
	}
	return tw.Flush()
}

// budgetChart draws one horizontal bar per campaign, scaled to the largest.
func (r *Renderer) budgetChart(w io.Writer, series []dashboard.BudgetPoint) error {
	top := decimal.Zero
	for _, p := range series {
		if p.Budget.GreaterThan(top) {
			top = p.Budget
		}
	}
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for _, p := range series {
		n := 0
		if top.IsPositive() && p.Budget.IsPositive() {
			n = int(p.Budget.Mul(decimal.NewFromInt(barWidth)).Div(top).Round(0).IntPart())
			if n == 0 {
				n = 1
			}
		}
		fmt.Fprintf(tw, "%s\t%s %s\n", p.Label, strings.Repeat("█", n), r.f.Currency(p.Budget))
	}
	return tw.Flush()
}

func table(w io.Writer, title string, header []string, rows [][]string) error {
	fmt.Fprintf(w, "== %s ==\n", title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func id(n int64) string { return fmt.Sprintf("%d", n) }

func (r *Renderer) brands(w io.Writer, rows []dashboard.BrandRow) error {
	out := make([][]string, 0, len(rows))
	for _, b := range rows {
		created := notAvailable
		if !b.CreatedAt.IsZero() {
			created = model.DateOf(b.CreatedAt).String()
		}
		out = append(out, []string{id(b.ID), b.Name, orNA(b.Industry), orNA(b.ContactPerson), orNA(b.ContactEmail), orNA(b.Website), created})
	}
	return table(w, "Brands", []string{"ID", "NAME", "INDUSTRY", "CONTACT", "EMAIL", "WEBSITE", "CREATED"}, out)
}

func (r *Renderer) influencers(w io.Writer, rows []dashboard.InfluencerRow) error {
	out := make([][]string, 0, len(rows))
	for _, i := range rows {
		out = append(out, []string{id(i.ID), i.Name, orNA(i.Email), orNA(i.Platform), r.f.Count(i.Followers), orNA(i.Niche), orNA(i.Phone)})
	}
	return table(w, "Influencers", []string{"ID", "NAME", "EMAIL", "PLATFORM", "FOLLOWERS", "NICHE", "PHONE"}, out)
}

func (r *Renderer) campaigns(w io.Writer, rows []dashboard.CampaignRow) error {
	out := make([][]string, 0, len(rows))
	for _, c := range rows {
		out = append(out, []string{id(c.ID), c.Brand, r.f.Currency(c.Budget), string(c.Status), Date(c.Start), Date(c.End), orNA(c.Objective)})
	}
	return table(w, "Campaigns", []string{"ID", "BRAND", "BUDGET", "STATUS", "START", "END", "OBJECTIVE"}, out)
}

func (r *Renderer) collaborations(w io.Writer, rows []dashboard.CollaborationRow) error {
	out := make([][]string, 0, len(rows))
	for _, c := range rows {
		out = append(out, []string{id(c.ID), c.Influencer, c.CampaignRef, r.f.Currency(c.Amount), string(c.Status), DatePtr(c.Deadline)})
	}
	return table(w, "Collaborations", []string{"ID", "INFLUENCER", "CAMPAIGN", "AMOUNT", "STATUS", "DEADLINE"}, out)
}

func (r *Renderer) payments(w io.Writer, rows []dashboard.PaymentRow) error {
	out := make([][]string, 0, len(rows))
	for _, p := range rows {
		out = append(out, []string{id(p.ID), p.Collab, Date(p.Date), r.f.Currency(p.Amount), string(p.Status), orNA(p.Mode)})
	}
	return table(w, "Payments", []string{"ID", "COLLABORATION", "DATE", "AMOUNT", "STATUS", "MODE"}, out)
}

func (r *Renderer) posts(w io.Writer, rows []dashboard.PostRow) error {
	out := make([][]string, 0, len(rows))
	for _, p := range rows {
		out = append(out, []string{id(p.ID), p.Influencer, id(p.CollabID), Date(p.Date), orNA(p.Type),
			r.f.Count(p.Likes), r.f.Count(p.Reach), r.f.Percent(p.EngagementRate)})
	}
	return table(w, "Posts", []string{"ID", "INFLUENCER", "COLLAB", "DATE", "TYPE", "LIKES", "REACH", "ENGAGEMENT"}, out)
}

// Activity writes recent change events, newest first as given.
func (r *Renderer) Activity(w io.Writer, items []model.Activity) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No activity yet.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tACTION\tSUMMARY")
	for _, a := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.OccurredAt.UTC().Format("2006-01-02 15:04:05"), a.Action, a.Summary)
	}
	return tw.Flush()
}
