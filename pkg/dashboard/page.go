// pkg/dashboard/page.go
package dashboard

import (
	"html/template"
	"io"

	"github.com/David-Botos/catalog-eda/pkg/aggregate"
	"github.com/David-Botos/catalog-eda/pkg/catalog"
	"github.com/David-Botos/catalog-eda/pkg/render"
)

// pageData feeds the index template
type pageData struct {
	Selection     catalog.Selection
	TypeOptions   []string
	YearMin       int
	YearMax       int
	Countries     []string
	Selected      map[string]bool
	Totals        aggregate.Totals
	Empty         bool
	EmptyMessage  string
	ChartsQuery   template.URL
	Rows          []TableRow
	Truncated     bool
	FilteredCount int
	RowLimit      int
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Catalog EDA</title>
<style>
body { font-family: sans-serif; margin: 0; display: flex; }
aside { width: 260px; padding: 1rem; background: #f4f4f6; min-height: 100vh; box-sizing: border-box; }
main { flex: 1; padding: 1rem 2rem; overflow-x: auto; }
label { display: block; margin-top: 1rem; font-weight: bold; }
select, input { width: 100%; }
.metrics { display: flex; gap: 2rem; }
.metric { font-size: 2rem; }
.metric span { display: block; font-size: .9rem; color: #666; }
.notice { padding: 1rem; background: #fff4e5; border: 1px solid #ffb74d; margin: 1rem 0; }
iframe { width: 100%; height: 3900px; border: 0; }
table { border-collapse: collapse; font-size: .85rem; }
th, td { border: 1px solid #ddd; padding: 2px 6px; text-align: left; }
</style>
</head>
<body>
<aside>
<h2>Filters</h2>
<form method="get" action="/">
<label for="type">Content type</label>
<select id="type" name="type" onchange="this.form.submit()">
{{- range .TypeOptions}}
<option value="{{.}}"{{if eq . $.Selection.TypeOption}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
<label>Release year</label>
<input type="number" name="year_min" min="{{.YearMin}}" max="{{.YearMax}}" value="{{.Selection.YearMin}}" onchange="this.form.submit()">
<input type="number" name="year_max" min="{{.YearMin}}" max="{{.YearMax}}" value="{{.Selection.YearMax}}" onchange="this.form.submit()">
<label for="country">Countries</label>
<select id="country" name="country" multiple size="12" onchange="this.form.submit()">
<option value="All"{{if .Selection.AllCountries}} selected{{end}}>All</option>
{{- range .Countries}}
<option value="{{.}}"{{if index $.Selected .}} selected{{end}}>{{.}}</option>
{{- end}}
</select>
<noscript><button type="submit">Apply</button></noscript>
</form>
</aside>
<main>
<h1>Streaming catalog exploratory analysis</h1>
<div class="metrics">
<div class="metric">{{.Totals.Total}}<span>Total</span></div>
<div class="metric">{{.Totals.Movies}}<span>Movies</span></div>
<div class="metric">{{.Totals.Series}}<span>TV Shows</span></div>
</div>
{{- if .Empty}}
<div class="notice">{{.EmptyMessage}}</div>
{{- end}}
<iframe src="/charts?{{.ChartsQuery}}" title="charts"></iframe>
<h2>Raw data</h2>
{{- if .Truncated}}
<p>Showing the first {{.RowLimit}} of {{.FilteredCount}} rows.</p>
{{- end}}
<table>
<tr><th>show_id</th><th>type</th><th>title</th><th>director</th><th>country</th><th>date_added</th><th>release_year</th><th>rating</th><th>duration</th><th>listed_in</th></tr>
{{- range .Rows}}
<tr><td>{{.ShowID}}</td><td>{{.Type}}</td><td>{{.Title}}</td><td>{{.Director}}</td><td>{{.Country}}</td><td>{{.DateAdded}}</td><td>{{.ReleaseYear}}</td><td>{{.Rating}}</td><td>{{.Duration}}</td><td>{{.ListedIn}}</td></tr>
{{- end}}
</table>
</main>
</body>
</html>
`))

// templateURL marks an encoded query string as safe for the iframe src
func templateURL(query string) template.URL {
	return template.URL(query)
}

func renderIndex(w io.Writer, data pageData) error {
	if data.Empty {
		data.EmptyMessage = "No data for this selection."
	}
	return indexTemplate.Execute(w, data)
}

// renderCharts writes the chart panels as a standalone page
func renderCharts(w io.Writer, panels []render.Panel) error {
	return render.RenderPage(w, "Catalog charts", panels)
}
