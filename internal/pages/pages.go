// Package pages holds the resources the login gate dispatches to: the static
// login form and the page shown after a successful login.
package pages

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/haguru/dispatcher/internal/dispatch"
)

const (
	LoginFormFile = "web/1.html"
	fwdDemoFile   = "web/fwddemo.html"

	ContentTypeHTML = "text/html; charset=utf-8"
)

//go:embed web/1.html web/fwddemo.html
var webFS embed.FS

var fwdDemoTemplate = template.Must(template.ParseFS(webFS, fwdDemoFile))

// LoginForm returns a handler serving the embedded login form.
func LoginForm() (http.Handler, error) {
	content, err := webFS.ReadFile(LoginFormFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", LoginFormFile, err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", ContentTypeHTML)
		_, _ = w.Write(content)
	}), nil
}

type fwdDemoData struct {
	Login string
	From  string
}

// FwdDemo greets the user whose login was forwarded to it.
func FwdDemo() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		from, ok := dispatch.ForwardedRequestURI(r.Context())
		if !ok {
			from = r.URL.RequestURI()
		}

		var login string
		if err := dispatch.ParseParameters(r); err == nil {
			if v := dispatch.Parameter(r, "login"); v != nil {
				login = *v
			}
		}

		w.Header().Set("Content-Type", ContentTypeHTML)
		err := fwdDemoTemplate.Execute(w, fwdDemoData{
			Login: login,
			From:  from,
		})
		if err != nil {
			http.Error(w, "failed to render page", http.StatusInternalServerError)
		}
	})
}
