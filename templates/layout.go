// Package templates renders the quote form, its HTMX fragments and the
// documents register as templ components.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup and keeps the first write error.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup as is.
func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes s escaped, safe for element content and quoted attributes.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + "=\"")
	h.text(value)
	h.raw("\"")
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

const pageStyle = `
body{font-family:system-ui,sans-serif;margin:0;background:#f5f5f4;color:#1c1917}
header{background:#15803d;color:#fff;padding:12px 24px;display:flex;gap:24px;align-items:center}
header a{color:#fff;text-decoration:none}
header h1{font-size:20px;margin:0;flex:1}
main{max-width:960px;margin:24px auto;padding:0 16px}
fieldset{border:1px solid #d6d3d1;border-radius:6px;margin-bottom:16px;background:#fff}
label{display:block;margin:4px 0}
input[type=number]{width:90px}
table{border-collapse:collapse;width:100%;background:#fff}
th,td{border:1px solid #d6d3d1;padding:6px 8px;text-align:left}
td.num,th.num{text-align:right}
.totals{font-size:18px;background:#fff;padding:12px;border-radius:6px}
.actions{display:flex;gap:12px;margin:16px 0}
#toast{position:fixed;bottom:24px;right:24px;padding:12px 16px;border-radius:6px;color:#fff;display:none}
#toast.success{background:#15803d}
#toast.error{background:#b91c1c}
`

// toastScript shows the showToast event sent through HX-Trigger, and
// downloads the generated document with fetch so a refusal stays on the form.
const toastScript = `
function showToast(d){var t=document.getElementById('toast');if(!t||!d)return;
t.textContent=d.message;t.className=d.type;t.style.display='block';
clearTimeout(t._h);t._h=setTimeout(function(){t.style.display='none'},4000)}
document.body.addEventListener('showToast',function(e){showToast(e.detail)});
function generateDocument(form){
fetch('/quote/pdf',{method:'POST',body:new FormData(form)}).then(function(r){
var trig=r.headers.get('HX-Trigger');
if(!r.ok){if(trig){try{showToast(JSON.parse(trig).showToast)}catch(e){}}return null}
var cd=r.headers.get('Content-Disposition')||'';var m=/filename\*=utf-8''([^;]+)/i.exec(cd)||/filename="?([^";]+)"?/.exec(cd);
return r.blob().then(function(b){var a=document.createElement('a');a.href=URL.createObjectURL(b);
a.download=m?decodeURIComponent(m[1]):'document.pdf';document.body.appendChild(a);a.click();a.remove();
if(trig){try{showToast(JSON.parse(trig).showToast)}catch(e){}}})})
.catch(function(){showToast({message:'Erreur réseau',type:'error'})});return false}
`

// Page wraps body in the shared HTML shell.
func Page(title, businessName string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<!DOCTYPE html><html lang="fr"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(title)
		h.raw("</title><style>" + pageStyle + "</style>")
		h.raw(`<script src="https://unpkg.com/htmx.org@2.0.4"></script></head><body>`)
		h.raw("<header><h1>")
		h.text(businessName)
		h.raw(`</h1><a href="/">Devis / Facture</a><a href="/documents">Registre</a><a href="/tarifs.pdf">Tarifs</a></header>`)
		h.raw(`<main id="content">`)
		h.render(body)
		h.raw(`</main><div id="toast"></div><script>` + toastScript + `</script></body></html>`)
		return h.err
	})
}
