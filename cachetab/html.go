// Copyright 2025 The fsbench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cachetab

import (
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("").Parse(`
{{- range . -}}
<h3>{{.Title}}</h3>
<table class='cachestat'>
<tr>{{range .Header}}<th>{{.}}{{end}}
{{range .Rows -}}
<tr>{{range .}}<td>{{.}}{{end}}
{{end -}}
</table>
{{end -}}
`))

// ToHTML renders the analysis as a sequence of HTML tables, one per
// Section.
func (t *Tables) ToHTML(w io.Writer) error {
	return htmlTemplate.Execute(w, t.Sections())
}
