package view

import (
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Weather</title>
{{- if .Page.Loading}}
<meta http-equiv="refresh" content="1">
{{- end}}
<style>
body{font-family:sans-serif}
.container{max-width:28rem;margin:2.5rem auto;padding:1rem}
.row{display:flex;gap:.5rem}
.skeleton{height:5rem;width:100%;border-radius:.75rem;background:#e5e7eb}
.alert{border:1px solid #dc2626;color:#dc2626;border-radius:.5rem;padding:1rem}
.card{margin-top:1rem;border:1px solid #e5e7eb;border-radius:.75rem;padding:1rem}
.card img{display:block;margin:0 auto 4rem}
</style>
</head>
<body>
<div class="container">
  <form method="post" action="{{.Action}}">
    <label for="city">{{.Label}}</label>
    <div class="row">
      <input id="city" name="city" placeholder="{{.Placeholder}}" value="{{.Page.City}}"
        {{- if not .Page.Loading}} oninput="this.form.querySelector('button').disabled = !this.value"{{end}} required>
      <button type="submit"{{if .Page.ButtonDisabled}} disabled{{end}}>{{.Page.ButtonLabel}}</button>
    </div>
  </form>
{{- if .Page.Loading}}
  <div class="skeleton" data-testid="loading"></div>
{{- end}}
{{- if .Page.Error}}
  <div class="alert" role="alert">
    <strong>{{.ErrorTitle}}</strong>
    <p>{{.Page.Error}}</p>
  </div>
{{- end}}
{{- with .Page.Result}}
  <div class="card">
    {{- if .IconURL}}
    <img width="{{$.IconSize}}" height="{{$.IconSize}}" src="{{.IconURL}}" alt="{{.IconAlt}}">
    {{- end}}
    {{- range .Rows}}
    <p><strong>{{.Label}}:</strong> {{.Value}}</p>
    {{- end}}
  </div>
{{- end}}
</div>
</body>
</html>
`))

// Render writes page as a full HTML document whose form posts to action.
func Render(w io.Writer, action string, page Page) error {
	return pageTemplate.Execute(w, struct {
		Page        Page
		Action      string
		Label       string
		Placeholder string
		ErrorTitle  string
		IconSize    int
	}{
		Page:        page,
		Action:      action,
		Label:       InputLabel,
		Placeholder: InputPlaceholder,
		ErrorTitle:  ErrorTitle,
		IconSize:    IconSize,
	})
}
