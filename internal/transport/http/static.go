package http

import (
	"net/http"
)

// Dashboard serves the inline HTML dashboard at GET "/". It drives the
// JSON API from the browser: create (with optional custom code), search,
// delete, and per-link click stats.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	const page = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width,initial-scale=1"/>
<title>tinylink</title>
<style>
body{font-family:system-ui,-apple-system,Segoe UI,Roboto,Ubuntu,Cantarell,Noto Sans,sans-serif;margin:0;padding:2rem;background:#0b0b0c;color:#e8e8ea}
.container{max-width:860px;margin:0 auto}
.card{background:#151517;border:1px solid #2b2b2f;border-radius:12px;padding:1.25rem;margin-bottom:1rem}
h1{font-size:1.25rem;margin:0 0 1rem}
input,button{font-size:1rem}
input[type=text]{width:100%;padding:.6rem;border-radius:8px;border:1px solid #2b2b2f;background:#0f0f11;color:#e8e8ea;box-sizing:border-box}
.row{display:flex;gap:.5rem;margin-top:.75rem}
.row button{padding:.6rem 1rem;border:1px solid #2b2b2f;background:#1f1f23;color:#e8e8ea;border-radius:8px;cursor:pointer;white-space:nowrap}
table{width:100%;border-collapse:collapse;font-size:.9rem}
th,td{text-align:left;padding:.5rem;border-bottom:1px solid #2b2b2f;word-break:break-all}
small,.muted{opacity:.7}
.err{color:#ff8a8a;margin-top:.5rem}
.ok{color:#8aff9e;margin-top:.5rem}
a{color:#97b3ff}
code{color:#97b3ff}
.del{color:#ff8a8a;background:none;border:1px solid #ff8a8a55;border-radius:6px;padding:.2rem .6rem;cursor:pointer}
</style>
</head>
<body>
<div class="container">
  <div class="card">
    <h1>tinylink — make a short link</h1>
    <input id="url" type="text" placeholder="https://example.com/very/long/link"/>
    <div class="row">
      <input id="code" type="text" maxlength="8" placeholder="custom code, 6-8 letters/digits (optional)"/>
      <button id="go">Shorten</button>
    </div>
    <div id="msg"></div>
  </div>
  <div class="card">
    <input id="search" type="text" placeholder="Search by code or URL..."/>
    <table>
      <thead><tr><th>Code</th><th>Target URL</th><th>Clicks</th><th>Last clicked</th><th>Created</th><th></th></tr></thead>
      <tbody id="links"></tbody>
    </table>
    <p class="muted" id="empty" style="display:none">No links yet. Create your first short link above.</p>
  </div>
  <p class="muted">API: <code>GET/POST /api/links</code>, <code>GET/DELETE /api/links/{code}</code>, <code>GET /{code}</code>, <code>GET /healthz</code></p>
</div>
<script>
let links = [];
function fmt(ts){ return ts ? new Date(ts).toLocaleString() : 'Never'; }
function render(){
  const q = document.getElementById('search').value.trim().toLowerCase();
  const rows = links.filter(l => l.code.toLowerCase().includes(q) || l.url.toLowerCase().includes(q));
  document.getElementById('empty').style.display = rows.length ? 'none' : '';
  document.getElementById('links').innerHTML = rows.map(l =>
    '<tr><td><a href="/'+l.code+'" target="_blank" rel="noopener">'+l.code+'</a></td>'+
    '<td>'+l.url+'</td><td>'+l.clicks+'</td><td>'+fmt(l.last_clicked_at)+'</td>'+
    '<td>'+fmt(l.created_at)+'</td>'+
    '<td><button class="del" data-code="'+l.code+'">Delete</button></td></tr>').join('');
}
async function load(){
  const res = await fetch('/api/links');
  links = res.ok ? await res.json() : [];
  render();
}
async function shorten(){
  const msg = document.getElementById('msg');
  msg.className = ''; msg.textContent = '';
  const body = { url: document.getElementById('url').value.trim() };
  const code = document.getElementById('code').value.trim();
  if(code) body.code = code;
  const res = await fetch('/api/links', {
    method:'POST',
    headers:{'Content-Type':'application/json'},
    body:JSON.stringify(body)
  });
  const data = await res.json().catch(()=>({}));
  if(!res.ok){ msg.className='err'; msg.textContent = data.error || 'Failed to create link.'; return; }
  msg.className='ok'; msg.textContent = 'Short link created: '+data.code;
  document.getElementById('url').value=''; document.getElementById('code').value='';
  load();
}
document.getElementById('go').addEventListener('click', shorten);
document.getElementById('url').addEventListener('keydown', e=>{ if(e.key==='Enter') shorten(); });
document.getElementById('search').addEventListener('input', render);
document.getElementById('links').addEventListener('click', async e=>{
  const code = e.target.dataset && e.target.dataset.code;
  if(!code || !confirm('Delete link '+code+'?')) return;
  const res = await fetch('/api/links/'+code, { method:'DELETE' });
  if(res.ok || res.status === 204) load();
});
load();
</script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}
