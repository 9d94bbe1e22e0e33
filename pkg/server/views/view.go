/* Copyright 2025 Notevault Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package views renders the HTML pages from embedded templates
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/notevault/notevault/pkg/server/context"
	"github.com/notevault/notevault/pkg/server/database"
	"github.com/notevault/notevault/pkg/server/log"
	"github.com/pkg/errors"
)

//go:embed templates/*.gohtml
var templateFiles embed.FS

const (
	layoutTemplate = "base"
	siteTitle      = "Notevault"
)

// Data is the data passed to a template
type Data struct {
	Title string
	User  *database.User
	Alert string
	Yield map[string]interface{}
}

// View holds a parsed page template with its layout
type View struct {
	Template *template.Template
}

// NewView parses the layout and the given page template. It panics if the
// templates are missing; views are constructed once at startup.
func NewView(page string) *View {
	t := template.New(layoutTemplate).Funcs(template.FuncMap{
		// overridden per request
		"csrfField": func() (template.HTML, error) {
			return "", errors.New("csrfField is not implemented")
		},
		"siteTitle": func() string {
			return siteTitle
		},
	})

	t, err := t.ParseFS(templateFiles, "templates/base.gohtml", fmt.Sprintf("templates/%s.gohtml", page))
	if err != nil {
		panic(errors.Wrapf(err, "parsing template %s", page))
	}

	return &View{Template: t}
}

// Render renders the view with the predefined layout
func (v *View) Render(w http.ResponseWriter, r *http.Request, data *Data, statusCode int) {
	w.Header().Set("Content-Type", "text/html")

	var vd Data
	if data != nil {
		vd = *data
	}
	if vd.Yield == nil {
		vd.Yield = map[string]interface{}{}
	}
	if vd.User == nil {
		vd.User = context.User(r.Context())
	}

	csrfField := csrf.TemplateField(r)
	tpl := v.Template.Funcs(template.FuncMap{
		"csrfField": func() template.HTML {
			return csrfField
		},
	})

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, layoutTemplate, vd); err != nil {
		log.ErrorWrap(err, fmt.Sprintf("executing template for URI '%s'", r.RequestURI))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	io.Copy(w, &buf)
}
