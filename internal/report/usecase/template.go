package usecase

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"time"

	"report-srv/internal/model"
	"report-srv/internal/report"
	"report-srv/pkg/util"
)

const reportTemplateHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #222; margin: 24px; }
  h1 { font-size: 20px; border-bottom: 2px solid #4E79A7; padding-bottom: 6px; }
  h2 { font-size: 14px; margin-top: 22px; color: #4E79A7; }
  .meta { font-size: 11px; color: #666; }
  table { border-collapse: collapse; width: 100%; font-size: 11px; margin-top: 6px; }
  th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
  th { background: #f0f4f8; }
  img.chart { max-width: 480px; display: block; margin: 8px 0; }
</style>
</head>
<body>
<h1>{{ .Title }}</h1>
<p class="meta">Period: {{ .Period }} · Generated: {{ .Generated }}</p>
{{ range .Sections }}
<h2>{{ .Title }}</h2>
{{ if .Chart }}<img class="chart" src="{{ .Chart }}" alt="{{ .Title }}">{{ end }}
{{ if .Rows }}
<table>
  <tr>{{ range .Header }}<th>{{ . }}</th>{{ end }}</tr>
  {{ range .Rows }}<tr>{{ range . }}<td>{{ . }}</td>{{ end }}</tr>
  {{ end }}
</table>
{{ end }}
{{ end }}
</body>
</html>`

var reportTemplate = template.Must(template.New("report").Parse(reportTemplateHTML))

type pdfSection struct {
	Title  string
	Header []string
	Rows   [][]string
	Chart  template.URL
}

type pdfView struct {
	Title     string
	Period    string
	Generated string
	Sections  []pdfSection
}

// renderReportHTML builds the HTML body handed to the renderer. Chart images
// are embedded as data URIs so the page needs no network access.
func renderReportHTML(m *model.ReportModel) (string, error) {
	view := pdfView{
		Title:     m.Title,
		Period:    fmt.Sprintf("%s to %s", util.DateToStr(m.Range.From), util.DateToStr(m.Range.To)),
		Generated: m.Generated.UTC().Format(time.RFC3339),
		Sections:  buildPDFSections(m),
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildPDFSections(m *model.ReportModel) []pdfSection {
	switch m.ReportType {
	case report.ReportTypeUsers:
		return []pdfSection{userListSection(m.Users)}
	case report.ReportTypeSubscriptions:
		return []pdfSection{subscriptionListSection(m.Subscriptions)}
	}

	sections := []pdfSection{{
		Title:  "Totals",
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"New users", fmt.Sprint(m.TotalUsers)},
			{"New subscriptions", fmt.Sprint(m.TotalSubscriptions)},
		},
	}}

	demographics := []struct {
		title, chart string
		counts       []model.GroupedCount
	}{
		{"Users by gender", chartUsersGender, m.UsersByGender},
		{"Users by age", chartUsersAge, m.UsersByAge},
		{"Subscriptions by gender", chartSubsGender, m.SubsByGender},
		{"Subscriptions by age", chartSubsAge, m.SubsByAge},
	}
	for _, d := range demographics {
		rows := make([][]string, 0, len(d.counts))
		for _, gc := range d.counts {
			rows = append(rows, []string{gc.Key, fmt.Sprint(gc.Count)})
		}
		sections = append(sections, pdfSection{
			Title:  d.title,
			Header: []string{"Bucket", "Count"},
			Rows:   rows,
			Chart:  chartURI(m.Charts, d.chart),
		})
	}

	rankings := []struct {
		title, chart string
		entities     []model.RankedEntity
	}{
		{"Top channels by subscriptions", chartChannelsSubs, m.TopChannelsBySubscriptions},
		{"Top programs by subscriptions", chartProgramsSubs, m.TopProgramsBySubscriptions},
		{"Top channels by live clicks", chartChannelsLive, m.TopChannelsByLiveClicks},
		{"Top channels by deferred clicks", chartChannelsDeferred, m.TopChannelsByDeferredClicks},
		{"Top programs by clicks", chartProgramsClicks, m.TopProgramsByClicks},
	}
	for _, rk := range rankings {
		rows := make([][]string, 0, len(rk.entities))
		for i, e := range rk.entities {
			rank := fmt.Sprint(i + 1)
			if e.Rank > 0 {
				rank = fmt.Sprint(e.Rank)
			}
			rows = append(rows, []string{rank, e.Name, e.ParentName, fmt.Sprint(e.Total())})
		}
		sections = append(sections, pdfSection{
			Title:  rk.title,
			Header: []string{"Rank", "Name", "Channel", "Count"},
			Rows:   rows,
			Chart:  chartURI(m.Charts, rk.chart),
		})
	}

	if m.FocusChannel != nil {
		rank := "outside ranking"
		if m.FocusChannel.Rank > 0 {
			rank = fmt.Sprint(m.FocusChannel.Rank)
		}
		sections = append(sections, pdfSection{
			Title:  "Focus channel",
			Header: []string{"Name", "Rank", "Subscriptions"},
			Rows:   [][]string{{m.FocusChannel.Name, rank, fmt.Sprint(m.FocusChannel.Total())}},
		})
	}

	return sections
}

func userListSection(users []model.User) pdfSection {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		birthDate := ""
		if u.BirthDate != nil {
			birthDate = util.DateToStr(*u.BirthDate)
		}
		rows = append(rows, []string{u.ID, u.Email, string(u.Gender), birthDate, util.DateToStr(u.CreatedAt)})
	}
	return pdfSection{
		Title:  "Users",
		Header: []string{"ID", "Email", "Gender", "BirthDate", "CreatedAt"},
		Rows:   rows,
	}
}

func subscriptionListSection(subs []model.Subscription) pdfSection {
	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, []string{s.ID, s.UserID, s.ProgramName, s.ChannelName, fmt.Sprint(s.Active), util.DateToStr(s.CreatedAt)})
	}
	return pdfSection{
		Title:  "Subscriptions",
		Header: []string{"ID", "UserID", "Program", "Channel", "Active", "CreatedAt"},
		Rows:   rows,
	}
}

// chartURI embeds a rendered PNG as a data URI. Missing charts yield an empty
// URI and the template omits the image.
func chartURI(chartsByName map[string][]byte, name string) template.URL {
	img, ok := chartsByName[name]
	if !ok || len(img) == 0 {
		return ""
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(img))
}
