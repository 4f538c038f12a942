package dashboard

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/BarkinBalci/email-analytics-dashboard/internal/dto"
)

// TemplateName is the name the dashboard page is registered under
const TemplateName = "dashboard.html"

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"comma":   func(n int) string { return humanize.Comma(int64(n)) },
		"percent": func(v float64) string { return fmt.Sprintf("%.2f%%", v) },
	}).ParseFS(templateFS, "templates/*.html")
}

// Chart is one rendered vega-lite visualisation
type Chart struct {
	ID    string
	Title string
	Spec  template.JS
	Wide  bool
}

// FunnelTable lists the sent, reply and lead counts of one dimension
type FunnelTable struct {
	Title     string
	Dimension string
	Rows      []dto.DimensionRateData
}

// Page is the view model of the dashboard template
type Page struct {
	Title          string
	Theme          Theme
	NextTheme      Theme
	Palette        Palette
	Start          string
	End            string
	RefreshSeconds int
	Error          string
	Snapshot       *dto.SnapshotResponse
	Charts         []Chart
	Funnels        []FunnelTable
	TopCompanies   int
	ReturnTo       string
}

// PageOptions describe how a page is rendered
type PageOptions struct {
	Theme           Theme
	RefreshInterval time.Duration
	TopCompanies    int
	ReturnTo        string
}

// NewPage builds the view model for snapshot. A nil snapshot renders errMessage instead.
func NewPage(snapshot *dto.SnapshotResponse, errMessage string, opts PageOptions) (*Page, error) {
	page := &Page{
		Title:          "Email Analytics Dashboard",
		Theme:          opts.Theme,
		NextTheme:      opts.Theme.Toggle(),
		Palette:        opts.Theme.Palette(),
		RefreshSeconds: int(opts.RefreshInterval / time.Second),
		Error:          errMessage,
		Snapshot:       snapshot,
		TopCompanies:   opts.TopCompanies,
		ReturnTo:       opts.ReturnTo,
	}

	if snapshot == nil {
		return page, nil
	}
	page.Start = snapshot.Start
	page.End = snapshot.End
	if snapshot.Empty {
		return page, nil
	}

	charts, err := buildCharts(snapshot, page.Palette)
	if err != nil {
		return nil, err
	}
	page.Charts = charts
	page.Funnels = []FunnelTable{
		{Title: "Outreach Funnel by City", Dimension: "City", Rows: snapshot.ByCity},
		{Title: "Outreach Funnel by Company Industry", Dimension: "Company Industry", Rows: snapshot.ByIndustry},
	}
	if page.TopCompanies <= 0 {
		page.TopCompanies = len(snapshot.TopCompanies)
	}

	return page, nil
}

func buildCharts(s *dto.SnapshotResponse, p Palette) ([]Chart, error) {
	specs := []struct {
		id   string
		spec spec
		wide bool
	}{
		{"daily", dailyChart(s, p), true},
		{"sentiment", sentimentChart(s, p), false},
		{"by-title", leadRateChart("Lead Rate by Contact Title", "Contact Title", s.ByTitle, p), false},
		{"by-agent", leadRateChart("Lead Rate by AI Agent", "AI Agent", s.ByAgent, p), false},
		{"by-city", leadRateChart("Lead Rate by City", "City", s.ByCity, p), false},
		{"by-industry", leadRateChart("Lead Rate by Company Industry", "Company Industry", s.ByIndustry, p), false},
		{"by-weekday", weekdayChart(s, p), false},
		{"by-hour", hourlyChart(s, p), false},
		{"reply-latency", latencyChart(s, p), true},
	}

	charts := make([]Chart, 0, len(specs))
	for _, c := range specs {
		raw, err := json.Marshal(c.spec)
		if err != nil {
			return nil, fmt.Errorf("failed to encode chart %s: %w", c.id, err)
		}
		charts = append(charts, Chart{
			ID:    c.id,
			Title: c.spec["title"].(string),
			Spec:  template.JS(raw),
			Wide:  c.wide,
		})
	}
	return charts, nil
}
