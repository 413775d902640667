// Package views holds the site's HTML pages. Pages are html/template files
// embedded in the binary and exposed as templ components.
package views

import (
	"embed"
	"html/template"
	"io/fs"

	"suredoor/models"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the embedded CSS and JavaScript, rooted at the static directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Page is the data every page template receives
type Page struct {
	Title       string
	Description string
	Path        string
	Site        models.SiteSettings
	CSRF        string
	AdminEmail  string
	Flash       string
	Error       string
	Errors      map[string]string
	Data        any
}

const (
	pageHome      = "home"
	pageAbout     = "about"
	pagePrograms  = "programs"
	pageProgram   = "program"
	pageBlog      = "blog"
	pagePost      = "post"
	pageGallery   = "gallery"
	pageDonate    = "donate"
	pageContact   = "contact"
	pageLogin     = "login"
	pageDashboard = "dashboard"
	pageError     = "error"
)

var pages = parsePages(
	pageHome, pageAbout, pagePrograms, pageProgram, pageBlog, pagePost,
	pageGallery, pageDonate, pageContact, pageLogin, pageDashboard, pageError,
)

// parsePages pairs every page with the shared layout and partials
func parsePages(names ...string) map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		parsed[name] = template.Must(template.New("layout.html").Funcs(funcMap()).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials.html",
			"templates/"+name+".html",
		))
	}
	return parsed
}

func render(name string, p Page) templ.Component {
	return templ.FromGoHTML(pages[name], p)
}

func Home(p Page) templ.Component      { return render(pageHome, p) }
func About(p Page) templ.Component     { return render(pageAbout, p) }
func Programs(p Page) templ.Component  { return render(pagePrograms, p) }
func Program(p Page) templ.Component   { return render(pageProgram, p) }
func Blog(p Page) templ.Component      { return render(pageBlog, p) }
func Post(p Page) templ.Component      { return render(pagePost, p) }
func Gallery(p Page) templ.Component   { return render(pageGallery, p) }
func Donate(p Page) templ.Component    { return render(pageDonate, p) }
func Contact(p Page) templ.Component   { return render(pageContact, p) }
func Login(p Page) templ.Component     { return render(pageLogin, p) }
func Dashboard(p Page) templ.Component { return render(pageDashboard, p) }
func Error(p Page) templ.Component     { return render(pageError, p) }
