package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/evaszabo/folio/internal/content"
	"github.com/evaszabo/folio/internal/route"
	"github.com/evaszabo/folio/internal/view"
)

// Settings are the per-site values the templates need beyond the content
// library.
type Settings struct {
	Statement        string
	ShowreelVideo    string
	ParallaxStrength float64
	RevealMargin     int
	BaseURL          string
	Instagram        string
	Email            string

	// LiveReload adds the live-reload endpoint to every page.
	LiveReload bool
}

// Renderer turns views into HTML pages.
type Renderer struct {
	settings Settings
	md       goldmark.Markdown
	pages    map[route.Kind]*template.Template
	now      func() time.Time
}

// pageData holds the data passed to the layout for each page.
type pageData struct {
	Title     string
	Kind      string
	Canonical string
	Brand     content.Brand
	Settings  Settings
	Year      int
	Body      any
}

type homePage struct {
	*view.Home
	HeadingID string
	BookID    string
	BookBlurb template.HTML
}

type figure struct {
	Index int
	Image content.Image
	Href  string
	Alt   string
	Label string
}

type openImage struct {
	Index   int
	Src     string
	Caption string
	Alt     string
}

type detailPage struct {
	*view.ProjectDetail
	Description template.HTML
	Figures     []figure
	Prev, Next  string
	Self        string
	Open        *openImage
}

type aboutPage struct {
	*view.About
	Body template.HTML
}

// NewRenderer parses the page templates.
func NewRenderer(s Settings) (*Renderer, error) {
	funcs := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}
	base, err := template.New("layout").Funcs(funcs).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}

	r := &Renderer{
		settings: s,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		pages: make(map[route.Kind]*template.Template),
		now:   time.Now,
	}

	sources := map[route.Kind]string{
		route.KindHome:     homeTemplate,
		route.KindProject:  projectTemplate,
		route.KindAbout:    aboutTemplate,
		route.KindNotFound: notFoundTemplate,
	}
	for kind, src := range sources {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", kind, err)
		}
		r.pages[kind] = t
	}
	return r, nil
}

// Settings returns the renderer's site settings.
func (r *Renderer) Settings() Settings { return r.settings }

// markdown renders s as HTML. Descriptions and about text are plain prose
// that may carry inline markdown.
func (r *Renderer) markdown(s string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(s), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Render writes the page for v.
func (r *Renderer) Render(w io.Writer, v view.View) error {
	tmpl, ok := r.pages[v.Kind()]
	if !ok {
		return fmt.Errorf("no template for %s view", v.Kind())
	}

	data := pageData{
		Kind:     v.Kind().String(),
		Settings: r.settings,
		Year:     r.now().Year(),
	}
	if r.settings.BaseURL != "" && v.Kind() != route.KindNotFound {
		data.Canonical = strings.TrimSuffix(r.settings.BaseURL, "/") + v.Path()
	}

	switch v := v.(type) {
	case *view.Home:
		blurb, err := r.markdown(v.Book.Blurb)
		if err != nil {
			return err
		}
		data.Title = v.Brand.Name
		if v.Brand.Tag != "" {
			data.Title += " · " + v.Brand.Tag
		}
		data.Brand = v.Brand
		data.Body = homePage{Home: v, HeadingID: view.RevealProjectsHeading, BookID: view.RevealBook, BookBlurb: blurb}

	case *view.ProjectDetail:
		page, err := r.detailPage(v)
		if err != nil {
			return err
		}
		data.Title = v.Project.Title + " · " + v.Brand.Name
		data.Brand = v.Brand
		data.Body = page

	case *view.About:
		body, err := r.markdown(v.Content.Body)
		if err != nil {
			return err
		}
		data.Title = v.Content.Heading + " · " + v.Brand.Name
		data.Brand = v.Brand
		data.Body = aboutPage{About: v, Body: body}

	case *view.NotFound:
		data.Title = "Not found · " + v.Brand.Name
		data.Brand = v.Brand
		data.Body = v

	default:
		return fmt.Errorf("unsupported view %T", v)
	}

	return tmpl.ExecuteTemplate(w, "layout", data)
}

func (r *Renderer) detailPage(d *view.ProjectDetail) (detailPage, error) {
	desc, err := r.markdown(d.Project.Description)
	if err != nil {
		return detailPage{}, err
	}
	page := detailPage{
		ProjectDetail: d,
		Description:   desc,
		Self:          d.Path(),
	}
	page.Prev, _ = d.PreviousPath()
	page.Next, _ = d.NextPath()

	for i, img := range d.Project.Images {
		f := figure{
			Index: i,
			Image: img,
			Href:  d.Path() + "?image=" + strconv.Itoa(i),
			Alt:   img.Caption,
			Label: img.Caption,
		}
		if f.Alt == "" {
			f.Alt = fmt.Sprintf("%s image %d", d.Project.Title, i+1)
		}
		if f.Label == "" {
			f.Label = d.Project.Logline
		}
		page.Figures = append(page.Figures, f)
	}

	if d.Lightbox != nil {
		if img, k, ok := d.Lightbox.Active(); ok {
			page.Open = &openImage{Index: k, Src: img.Src, Caption: img.Caption, Alt: page.Figures[k].Alt}
		}
	}
	return page, nil
}
