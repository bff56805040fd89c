package web

// pageTemplate is the whole widget page. Card text comes from the untrusted
// feed; html/template escapes it everywhere except DescriptionHTML, which is
// pre-sanitized by bluemonday in the surface.
const pageTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<header>
  <h1>{{.Title}}</h1>
  <p><span id="product-count">{{.Count}}</span> products</p>
  <form id="search" action="/search" method="get">
    <input type="search" name="q" value="{{.Query}}" placeholder="Search products" aria-label="Search products">
    <button type="submit">Search</button>
  </form>
  <form id="refresh" action="/refresh" method="post">
    <button type="submit"{{if not .RefreshEnabled}} disabled{{end}}>Refresh</button>
  </form>
</header>
{{if .ToastVisible}}<div id="toast" role="status">{{.Toast}}</div>{{end}}
<main id="grid" class="grid">
{{if .EmptyShown}}  <div class="empty-state"><p>{{.EmptyMessage}}</p></div>
{{else}}{{range $i, $card := .Cards}}  <article class="card">
    <img src="{{$card.ImageURL}}" alt="{{$card.Title}}" loading="lazy" onerror="this.onerror=null;this.src='{{$card.ImageFallbackURL}}';">
    <h3>{{$card.Title}}</h3>
{{if $card.HasPrice}}    <p class="price">{{$card.PriceText}}</p>
{{end}}{{if $card.HasDescription}}    <p class="description">{{$card.DescriptionHTML}}</p>
{{if $card.CanToggle}}    <form action="/toggle/{{$i}}" method="post"><button type="submit" class="toggle">{{$card.ToggleLabel}}</button></form>
{{end}}{{end}}    <a class="buy" href="{{$card.LinkURL}}" target="_blank" rel="{{$card.LinkRel}}">{{$card.LinkLabel}}</a>
  </article>
{{end}}{{end}}</main>
{{if .Pagination.Visible}}<nav class="pagination">
{{if .Pagination.Prev}}  <form action="/page/prev" method="post"><button type="submit">Previous</button></form>
{{end}}  <span>Page {{.Pagination.Page}} of {{.Pagination.Total}}</span>
{{if .Pagination.Next}}  <form action="/page/next" method="post"><button type="submit">Next</button></form>
{{end}}</nav>
{{end}}</body>
</html>
`
