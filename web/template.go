package web

// pageTemplate is the single-page question form. Kept inline so the
// binary stays self-contained.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>askdb — natural language to SQL</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 60rem; color: #222; }
  h1 { font-size: 1.4rem; }
  .meta { color: #777; font-size: 0.85rem; }
  form { margin: 1rem 0; }
  textarea { width: 100%; height: 4rem; font-size: 1rem; padding: 0.5rem; box-sizing: border-box; }
  select, button { font-size: 1rem; padding: 0.4rem 0.8rem; margin-top: 0.5rem; }
  button { background: #2563eb; color: white; border: 0; border-radius: 4px; cursor: pointer; }
  .stats span { display: inline-block; margin-right: 1.5rem; color: #555; }
  .stats b { font-size: 1.2rem; color: #222; }
  pre { background: #f6f6f6; padding: 0.8rem; overflow-x: auto; border-radius: 4px; }
  .answer { background: #eef6ee; padding: 0.8rem; border-radius: 4px; white-space: pre-wrap; }
  .rejected { background: #fdf0e6; }
  .failed { background: #fdecec; }
  details { margin: 0.8rem 0; }
  table { border-collapse: collapse; }
  th, td { border: 1px solid #ddd; padding: 0.3rem 0.6rem; text-align: left; }
  th { background: #f0f0f0; }
</style>
</head>
<body>
<h1>askdb</h1>
<p class="meta">Ask a question in English; it is translated to SQL and run against the sample database. Provider: {{.Provider}}</p>

{{if .Stats}}
<p class="stats">
  <span><b>{{.Stats.Employees}}</b> employees</span>
  <span><b>{{.Stats.Departments}}</b> departments</span>
  <span><b>{{.Stats.Projects}}</b> projects</span>
</p>
{{end}}

<form method="post" action="/ask">
  <textarea name="question" placeholder="e.g. Show me all employees in the IT department">{{.Question}}</textarea><br>
  <select onchange="this.form.question.value=this.value">
    <option value="">Choose an example question…</option>
    {{range .Examples}}<option value="{{.}}">{{.}}</option>{{end}}
  </select>
  <button type="submit">Generate SQL &amp; Execute</button>
</form>

{{with .Turn}}
  <h2>Answer</h2>
  <div class="answer{{if eq .Outcome "rejected"}} rejected{{end}}{{if eq .Outcome "failed"}} failed{{end}}">{{.Answer}}</div>

  {{if .GeneratedSQL}}
  <h2>Generated SQL</h2>
  <pre>{{.GeneratedSQL}}</pre>
  {{end}}

  {{with .Result}}
  <h2>Raw data {{.Status}}</h2>
  <table>
    <tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
    {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
  </table>
  {{end}}
{{end}}

<details>
  <summary>Database schema</summary>
  <pre>{{.Schema}}</pre>
</details>
</body>
</html>
`
