package site

// layoutTemplate wraps every page with the header and footer.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  {{- if .Canonical}}
  <link rel="canonical" href="{{.Canonical}}">
  {{- end}}
  <link rel="stylesheet" href="/static/style.css">
</head>
<body class="view-{{.Kind}}" data-reveal-margin="{{.Settings.RevealMargin}}"{{if .Settings.LiveReload}} data-livereload="/livereload"{{end}}>
  <header class="site-header" id="site-header">
    <div class="wrap header-row">
      <a href="/" class="brand">{{.Brand.Name}}</a>
      <nav class="site-nav">
        <a href="/">Work</a>
        <a href="/about">About</a>
      </nav>
    </div>
  </header>
{{template "content" .}}
  <footer class="site-footer">
    <div class="wrap footer-row">
      <p>&copy; {{.Year}} {{.Brand.Name}} · Documentary Photography</p>
      <div class="footer-links">
        {{- with .Settings.Instagram}}
        <a href="{{.}}">Instagram</a>
        {{- end}}
        {{- with .Settings.Email}}
        <a href="mailto:{{.}}">Email</a>
        {{- end}}
      </div>
    </div>
  </footer>
  <script src="/static/script.js"></script>
</body>
</html>
{{end}}`

// homeTemplate is the chaptered scroll: showreel, chapter cards, book teaser.
const homeTemplate = `{{define "content"}}{{with .Body}}
  <main class="home">
    <section class="showreel" id="showreel" data-parallax-strength="{{$.Settings.ParallaxStrength}}">
      {{- if $.Settings.ShowreelVideo}}
      <video class="showreel-layer" src="{{$.Settings.ShowreelVideo}}" poster="{{(index .Frames 0).Src}}" autoplay loop muted playsinline></video>
      {{- else}}
      <div class="showreel-layer showreel-frames">
        {{- range .Frames}}
        <img src="{{.Src}}" alt="{{.Caption}}">
        {{- end}}
      </div>
      {{- end}}
      <div class="showreel-fade"></div>
      {{- with $.Settings.Statement}}
      <p class="showreel-caption">{{.}}</p>
      {{- end}}
      <span class="scroll-hint">Scroll</span>
    </section>

    <section class="wrap chapters">
      <div class="chapters-heading reveal" data-reveal="{{.HeadingID}}">
        <h2>Projects</h2>
        <p>Bodies of work that anchor {{$.Brand.Name}}'s practice.</p>
      </div>
      {{- range .Chapters}}
      <article class="chapter reveal" data-reveal="{{.RevealID}}">
        <a href="{{.Path}}" class="chapter-link">
          <div class="chapter-cover"><img src="{{.Project.Cover.Src}}" alt="{{.Project.Title}}" loading="lazy"></div>
          <div class="chapter-text">
            <span class="chapter-number">{{printf "%02d" (inc .Index)}}</span>
            <h3>{{.Project.Title}}</h3>
            <p class="meta">{{.Project.Place}} · {{.Project.Year}}</p>
            <p class="logline">{{.Project.Logline}}</p>
            <p class="cta">Open project →</p>
          </div>
        </a>
      </article>
      {{- end}}
    </section>
    {{- if .Book.Title}}

    <section class="wrap book reveal" id="book" data-reveal="{{.BookID}}">
      <div class="book-text">
        <h3>{{.Book.Title}}</h3>
        <div class="book-blurb">{{.BookBlurb}}</div>
      </div>
      {{- with .Book.Cover}}
      <div class="book-cover"><img src="{{.}}" alt="Book mock spread" loading="lazy"></div>
      {{- end}}
    </section>
    {{- end}}
  </main>
{{end}}{{end}}`

// projectTemplate is the detail page with its image grid, pager and
// lightbox overlay.
const projectTemplate = `{{define "content"}}{{with .Body}}
  <main class="project" data-project="{{.Project.ID}}" data-instance="{{.InstanceID}}">
    <section class="wrap-narrow project-head">
      <a href="/" class="back" data-back>← Back</a>
      {{- if .Fallback}}
      <p class="notice">There is no project called “{{.RequestedID}}”. Showing {{.Project.Title}} instead.</p>
      {{- end}}
      <h1>{{.Project.Title}}</h1>
      <p class="meta">{{.Project.Place}} · {{.Project.Year}}</p>
      <div class="description">{{.Description}}</div>
    </section>

    <section class="wrap-narrow project-images">
      <div class="grid">
        {{- range .Figures}}
        <figure class="thumb reveal" data-reveal="image-{{.Index}}" data-index="{{.Index}}" data-src="{{.Image.Src}}" data-caption="{{.Image.Caption}}" data-alt="{{.Alt}}">
          <a href="{{.Href}}"><img src="{{.Image.Src}}" alt="{{.Alt}}" loading="lazy"></a>
          <figcaption>{{.Label}}</figcaption>
        </figure>
        {{- end}}
      </div>

      <nav class="pager">
        {{- if .Prev}}
        <a class="pager-link" href="{{.Prev}}" rel="prev">← Previous</a>
        {{- else}}
        <span class="pager-link disabled" aria-disabled="true">← Previous</span>
        {{- end}}
        {{- if .Next}}
        <a class="pager-link" href="{{.Next}}" rel="next">Next →</a>
        {{- else}}
        <span class="pager-link disabled" aria-disabled="true">Next →</span>
        {{- end}}
      </nav>
    </section>

    <div class="lightbox{{if .Open}} open{{end}}" id="lightbox" role="dialog" aria-modal="true"{{if not .Open}} hidden{{end}}>
      <figure class="lightbox-figure">
        <img id="lightbox-image"{{with .Open}} src="{{.Src}}" alt="{{.Alt}}"{{end}}>
        <figcaption id="lightbox-caption">{{with .Open}}{{.Caption}}{{end}}</figcaption>
        <a class="lightbox-close" href="{{.Self}}" aria-label="Close">×</a>
      </figure>
    </div>
  </main>
{{end}}{{end}}`

// aboutTemplate is the static about page with its timeline.
const aboutTemplate = `{{define "content"}}{{with .Body}}
  <main class="about wrap-narrow">
    <h1>{{.Content.Heading}}</h1>
    <div class="about-body">{{.Body}}</div>
    {{- if .Content.Timeline}}
    <ol class="timeline">
      {{- range .Content.Timeline}}
      <li class="reveal" data-reveal="year-{{.Year}}">
        <span class="year">{{.Year}}</span>
        <p>{{.Text}}</p>
      </li>
      {{- end}}
    </ol>
    {{- end}}
  </main>
{{end}}{{end}}`

// notFoundTemplate is shown for paths outside the site's routes.
const notFoundTemplate = `{{define "content"}}{{with .Body}}
  <main class="notfound wrap-narrow">
    <h1>Page not found</h1>
    {{- with .RequestPath}}
    <p>Nothing lives at <code>{{.}}</code>.</p>
    {{- end}}
    <a href="/" class="cta">Return to the work →</a>
  </main>
{{end}}{{end}}`

// cssContent is the full stylesheet for the portfolio.
const cssContent = `/* ============ Variables ============ */
:root {
  --paper: #F7F4EF;
  --ink: #111111;
  --muted: #52525b;
  --faint: #71717a;
  --rule: #e4e4e7;
  --accent: #BCA98A;
  --serif: "Cormorant Garamond", "Iowan Old Style", Georgia, serif;
  --sans: "Inter", -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  --wrap: 72rem;
  --wrap-narrow: 64rem;
  --radius: 1rem;
  --ease: cubic-bezier(0.22, 1, 0.36, 1);
}

*, *::before, *::after { box-sizing: border-box; }

html { scroll-behavior: smooth; }

body {
  margin: 0;
  min-height: 100vh;
  background: var(--paper);
  color: var(--ink);
  font-family: var(--sans);
  line-height: 1.6;
  -webkit-font-smoothing: antialiased;
}

::selection { background: var(--accent); color: var(--ink); }

img { display: block; max-width: 100%; }

a { color: inherit; text-decoration: none; }

h1, h2, h3 { font-family: var(--serif); font-weight: 500; letter-spacing: -0.01em; margin: 0; }
h1 { font-size: clamp(2rem, 4vw, 2.75rem); }
h2 { font-size: clamp(1.75rem, 3.5vw, 2.5rem); }
h3 { font-size: 1.6rem; }

.wrap { max-width: var(--wrap); margin: 0 auto; padding: 0 1rem; }
.wrap-narrow { max-width: var(--wrap-narrow); margin: 0 auto; padding: 0 1rem; }

.meta { color: var(--muted); font-size: 0.9rem; margin: 0.25rem 0 0; }

/* ============ Header ============ */
.site-header {
  position: fixed;
  inset: 0 0 auto 0;
  z-index: 40;
  backdrop-filter: blur(8px);
  transition: background-color 0.3s, border-color 0.3s;
  border-bottom: 1px solid transparent;
}
.site-header.scrolled {
  background: rgba(247, 244, 239, 0.8);
  border-bottom-color: var(--rule);
}
.header-row { display: flex; align-items: center; justify-content: space-between; padding-top: 0.75rem; padding-bottom: 0.75rem; }
.brand { font-family: var(--serif); font-size: 1.25rem; letter-spacing: -0.01em; }
.site-nav { display: flex; gap: 1.25rem; font-size: 0.875rem; color: #3f3f46; }
.site-nav a:hover, .footer-links a:hover { opacity: 0.7; }

/* ============ Reveal ============ */
.reveal {
  opacity: 0;
  transform: translateY(16px);
  transition: opacity 0.5s var(--ease), transform 0.5s var(--ease);
}
.reveal.shown { opacity: 1; transform: none; }
@media (prefers-reduced-motion: reduce) {
  .reveal { opacity: 1; transform: none; transition: none; }
}

/* ============ Showreel ============ */
.showreel {
  position: relative;
  height: 85vh;
  min-height: 660px;
  overflow: hidden;
}
.showreel-layer {
  position: absolute;
  inset: 3rem 0 0 0;
  width: 100%;
  height: 100%;
  object-fit: cover;
  transition: transform 0.1s ease-out;
  will-change: transform;
}
.showreel-frames { display: grid; grid-template-columns: repeat(3, 1fr); }
.showreel-frames img { width: 100%; height: 100%; object-fit: cover; }
.showreel-fade {
  position: absolute;
  inset: 0;
  background: linear-gradient(to top, var(--paper), transparent 60%);
  pointer-events: none;
}
.showreel-caption {
  position: absolute;
  left: 2rem;
  bottom: 0.25rem;
  max-width: 36rem;
  margin: 0;
  font-family: var(--serif);
  font-size: clamp(1rem, 2.5vw, 1.875rem);
  line-height: 1.3;
  opacity: 0.5;
}
.scroll-hint {
  position: absolute;
  left: 50%;
  bottom: 0.75rem;
  transform: translateX(-50%);
  font-size: 0.75rem;
  color: #e4e4e7;
  animation: nudge 1.8s infinite;
}
@keyframes nudge {
  0%, 100% { transform: translate(-50%, 0); }
  50% { transform: translate(-50%, -4px); }
}

/* ============ Chapters ============ */
.chapters { padding-top: 4rem; padding-bottom: 4rem; }
.chapters-heading { margin-bottom: 2.5rem; }
.chapters-heading p { color: #3f3f46; margin: 0.5rem 0 0; max-width: 42rem; }
.chapter + .chapter { margin-top: 3.5rem; }
.chapter-link { display: grid; gap: 1.5rem; align-items: center; }
.chapter-cover { overflow: hidden; border-radius: var(--radius); box-shadow: 0 1px 2px rgba(0,0,0,0.06); }
.chapter-cover img { width: 100%; height: 42vh; object-fit: cover; transition: transform 0.4s var(--ease); }
.chapter-link:hover .chapter-cover img { transform: scale(1.02); }
.chapter-number { font-size: 0.75rem; letter-spacing: 0.1em; color: var(--faint); }
.logline { margin: 0.75rem 0 0; color: #27272a; }
.cta { margin: 0.75rem 0 0; font-size: 0.875rem; color: var(--faint); display: inline-block; }

/* ============ Book ============ */
.book {
  display: grid;
  gap: 2rem;
  align-items: center;
  padding-top: 4rem;
  padding-bottom: 4rem;
  border-top: 1px solid var(--rule);
}
.book-blurb { color: #3f3f46; max-width: 36rem; }
.book-cover { aspect-ratio: 3 / 2; overflow: hidden; border-radius: 0.75rem; background: var(--rule); }
.book-cover img { width: 100%; height: 100%; object-fit: cover; transition: transform 0.4s var(--ease); }
.book-cover:hover img { transform: scale(1.01); }

/* ============ Project ============ */
.project-head { padding-top: 7rem; padding-bottom: 2.5rem; }
.back { font-size: 0.875rem; color: var(--muted); }
.back:hover { color: var(--ink); }
.project-head h1 { margin-top: 0.75rem; }
.description { margin-top: 1.25rem; max-width: 48rem; color: #27272a; }
.notice {
  margin: 1rem 0 0;
  padding: 0.5rem 0.75rem;
  border-left: 2px solid var(--accent);
  font-size: 0.875rem;
  color: var(--muted);
}
.project-images { padding-bottom: 6rem; }
.grid { display: grid; gap: 1.5rem; }
.thumb {
  position: relative;
  margin: 0;
  overflow: hidden;
  border-radius: 0.75rem;
  cursor: zoom-in;
}
.thumb img { width: 100%; height: 18rem; object-fit: cover; transition: transform 0.3s var(--ease); }
.thumb:hover img { transform: translateY(-2px); }
.thumb figcaption {
  position: absolute;
  inset: auto 0 0 0;
  padding: 0.75rem;
  background: rgba(0, 0, 0, 0.7);
  color: #fff;
  font-size: 0.75rem;
  transform: translateY(100%);
  transition: transform 0.3s var(--ease);
}
.thumb:hover figcaption { transform: none; }

.pager { display: flex; justify-content: space-between; margin-top: 3rem; font-size: 0.875rem; color: #3f3f46; }
.pager-link { padding: 0.5rem 0.75rem; border-radius: 0.25rem; }
.pager-link:hover { background: rgba(228, 228, 231, 0.6); }
.pager-link.disabled { opacity: 0.4; cursor: not-allowed; }
.pager-link.disabled:hover { background: none; }

/* ============ Lightbox ============ */
.lightbox {
  position: fixed;
  inset: 0;
  z-index: 50;
  display: flex;
  align-items: center;
  justify-content: center;
  padding: 1.5rem;
  background: rgba(0, 0, 0, 0.95);
  animation: fade 0.2s ease-out;
}
.lightbox[hidden] { display: none; }
.lightbox-figure { position: relative; width: 100%; max-width: 72rem; margin: 0; cursor: default; }
.lightbox-figure img { width: 100%; height: auto; max-height: 85vh; object-fit: contain; border-radius: 0.25rem; }
.lightbox-figure figcaption { margin-top: 0.75rem; font-size: 0.875rem; color: #d4d4d8; }
.lightbox-figure figcaption:empty { display: none; }
.lightbox-close {
  position: absolute;
  top: 1rem;
  right: 1rem;
  font-size: 1.25rem;
  color: rgba(255, 255, 255, 0.8);
}
.lightbox-close:hover { color: #fff; }
@keyframes fade { from { opacity: 0; } to { opacity: 1; } }

/* ============ About ============ */
.about { padding-top: 7rem; padding-bottom: 5rem; }
.about-body { margin-top: 1rem; color: #3f3f46; max-width: 48rem; }
.timeline { list-style: none; margin: 2.5rem 0 0; padding: 0; display: grid; gap: 1.5rem; }
.timeline li { display: flex; gap: 1rem; }
.timeline .year { width: 7rem; flex-shrink: 0; font-size: 0.75rem; text-transform: uppercase; letter-spacing: 0.08em; color: var(--faint); padding-top: 0.2rem; }
.timeline p { margin: 0; color: #27272a; }

/* ============ Not found ============ */
.notfound { padding-top: 9rem; padding-bottom: 9rem; }
.notfound p { color: var(--muted); }
.notfound code { font-size: 0.9em; background: var(--rule); padding: 0.1rem 0.35rem; border-radius: 0.25rem; }

/* ============ Footer ============ */
.site-footer { border-top: 1px solid var(--rule); }
.footer-row {
  display: flex;
  flex-direction: column;
  gap: 1rem;
  padding-top: 2.5rem;
  padding-bottom: 2.5rem;
  font-size: 0.875rem;
  color: #3f3f46;
}
.footer-row p { margin: 0; }
.footer-links { display: flex; gap: 1.25rem; }

/* ============ Responsive ============ */
@media (min-width: 768px) {
  .chapters { padding-top: 6rem; padding-bottom: 6rem; }
  .chapter-link { grid-template-columns: 4fr 3fr; }
  .book { grid-template-columns: 3fr 2fr; }
  .grid { grid-template-columns: repeat(3, 1fr); }
  .showreel-caption { left: 4rem; }
  .footer-row { flex-direction: row; align-items: center; justify-content: space-between; }
}
`

// jsContent drives the client-side affordances: header state, reveal,
// showreel parallax, the lightbox and live reload.
const jsContent = `(function() {
  'use strict';

  var body = document.body;

  // ---- Header ----
  var header = document.getElementById('site-header');
  function onScroll() {
    if (header) header.classList.toggle('scrolled', window.scrollY > 10);
  }
  window.addEventListener('scroll', onScroll, { passive: true });
  onScroll();

  // ---- Reveal (one-shot per element) ----
  var margin = parseInt(body.getAttribute('data-reveal-margin') || '80', 10);
  var pending = Array.prototype.slice.call(document.querySelectorAll('.reveal'));
  if ('IntersectionObserver' in window) {
    var observer = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (!entry.isIntersecting) return;
        entry.target.classList.add('shown');
        observer.unobserve(entry.target);
      });
    }, { rootMargin: '-' + margin + 'px 0px -' + margin + 'px 0px' });
    pending.forEach(function(el) { observer.observe(el); });
  } else {
    pending.forEach(function(el) { el.classList.add('shown'); });
  }

  // ---- Showreel parallax ----
  var reel = document.getElementById('showreel');
  if (reel) {
    var layer = reel.querySelector('.showreel-layer');
    var strength = parseFloat(reel.getAttribute('data-parallax-strength') || '10');
    reel.addEventListener('mousemove', function(e) {
      var r = reel.getBoundingClientRect();
      if (!layer || r.width <= 0 || r.height <= 0) return;
      var dx = (e.clientX - (r.left + r.width / 2)) / r.width;
      var dy = (e.clientY - (r.top + r.height / 2)) / r.height;
      layer.style.transform = 'translate(' + (-dx * strength) + 'px, ' + (-dy * strength) + 'px)';
    });
  }

  // ---- Lightbox ----
  var box = document.getElementById('lightbox');
  if (box) {
    var image = document.getElementById('lightbox-image');
    var caption = document.getElementById('lightbox-caption');
    var figure = box.querySelector('.lightbox-figure');
    var closeButton = box.querySelector('.lightbox-close');
    var thumbs = Array.prototype.slice.call(document.querySelectorAll('.thumb'));
    var onKey = null;

    function listen() {
      if (onKey) return;
      onKey = function(e) {
        if (e.key === 'Escape') dismiss();
      };
      document.addEventListener('keydown', onKey);
    }

    function release() {
      if (!onKey) return;
      document.removeEventListener('keydown', onKey);
      onKey = null;
    }

    function select(k) {
      var thumb = thumbs[k];
      if (!thumb) return;
      image.src = thumb.getAttribute('data-src');
      image.alt = thumb.getAttribute('data-alt') || '';
      caption.textContent = thumb.getAttribute('data-caption') || '';
      box.hidden = false;
      box.classList.add('open');
      listen();
      history.replaceState(null, '', location.pathname + '?image=' + k);
    }

    function dismiss() {
      if (box.hidden) return;
      box.hidden = true;
      box.classList.remove('open');
      image.removeAttribute('src');
      caption.textContent = '';
      release();
      history.replaceState(null, '', location.pathname);
    }

    thumbs.forEach(function(thumb, k) {
      thumb.addEventListener('click', function(e) {
        e.preventDefault();
        select(k);
      });
    });
    closeButton.addEventListener('click', function(e) {
      e.preventDefault();
      dismiss();
    });
    figure.addEventListener('click', function(e) { e.stopPropagation(); });
    box.addEventListener('click', dismiss);
    window.addEventListener('pagehide', release);

    if (box.classList.contains('open')) {
      listen();
    } else {
      var q = new URLSearchParams(location.search).get('image');
      if (q !== null && /^[0-9]+$/.test(q)) select(parseInt(q, 10));
    }
  }

  // ---- Back ----
  Array.prototype.forEach.call(document.querySelectorAll('[data-back]'), function(link) {
    link.addEventListener('click', function(e) {
      if (history.length > 1 && document.referrer.indexOf(location.host) !== -1) {
        e.preventDefault();
        history.back();
      }
    });
  });

  // ---- Live reload ----
  var endpoint = body.getAttribute('data-livereload');
  if (endpoint && 'WebSocket' in window) {
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var socket = new WebSocket(scheme + location.host + endpoint);
    socket.onmessage = function(m) {
      var msg = JSON.parse(m.data);
      if (msg.type === 'reload') location.reload();
    };
  }
})();
`
