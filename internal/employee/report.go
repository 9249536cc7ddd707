package employee

import (
	"html/template"
	"net/http"
	"time"
)

// reportTemplate is the printable roster view. It deliberately carries its
// own minimal styling so the page prints cleanly without the app shell.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Employee List</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
h1 { font-size: 1.4rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f3f4f6; }
.inactive { color: #991b1b; }
.meta { color: #6b7280; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>Employee List</h1>
<p class="meta">Generated {{.GeneratedAt.Format "02 Jan 2006 15:04"}} &middot; {{len .Employees}} of {{.Stats.Total}} employees</p>
<table>
<thead>
<tr><th>Name</th><th>Gender</th><th>Date of Birth</th><th>State</th><th>Status</th></tr>
</thead>
<tbody>
{{range .Employees}}<tr>
<td>{{.FullName}}</td>
<td>{{.Gender}}</td>
<td>{{.DateOfBirth}}</td>
<td>{{.State}}</td>
<td{{if not .IsActive}} class="inactive"{{end}}>{{if .IsActive}}Active{{else}}Inactive{{end}}</td>
</tr>{{end}}
</tbody>
</table>
</body>
</html>
`))

type reportData struct {
	Employees   []Employee
	Stats       Stats
	GeneratedAt time.Time
}

// Report renders the printable roster, honoring the same filter query
// parameters as the list endpoint.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	criteria, err := h.criteriaFromQuery(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	records := h.Store.List()
	data := reportData{
		Employees:   Apply(records, criteria),
		Stats:       Summarize(records),
		GeneratedAt: time.Now(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := reportTemplate.Execute(w, data); err != nil {
		h.Logger.Error("Report: failed to render", "error", err)
	}
}
