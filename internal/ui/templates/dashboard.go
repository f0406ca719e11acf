// Package templates holds the dashboard page shell. The shell is static; all
// report data arrives through the datastar SSE endpoint, so the browser
// re-renders charts whenever the page selector or the date range changes.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>Olist E-commerce Dashboard</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@main/bundles/datastar.js"></script>
<style>
body { font-family: system-ui, sans-serif; margin: 0; display: flex; }
.sidebar { width: 220px; min-height: 100vh; background: #f0f2f6; padding: 16px; }
.sidebar button { display: block; width: 100%; margin-bottom: 6px; padding: 8px; border: none; border-radius: 4px; background: #fff; cursor: pointer; text-align: left; }
.sidebar button:hover { background: #ffe3e3; }
.content { flex: 1; padding: 24px; }
.filters label { display: block; margin-top: 12px; font-size: 13px; color: #555; }
#kpi-strip { display: flex; gap: 12px; margin-bottom: 16px; }
.kpi-card { background: #f0f2f6; border-left: 5px solid #ff4b4b; padding: 15px; border-radius: 5px; flex: 1; }
.kpi-title { color: #555; font-size: 14px; font-weight: bold; }
.kpi-value { color: #000; font-size: 24px; font-weight: bold; }
</style>
</head>
<body data-signals="{page: 'overview', start: '', end: '', topN: 10, dashboard: {}}">
<nav class="sidebar">
<h3>Navigation</h3>
<button data-on-click="$page = 'overview'; @get('/sse/dashboard?page=overview&start=' + $start + '&end=' + $end)">Overview</button>
<button data-on-click="$page = 'sales'; @get('/sse/dashboard?page=sales&start=' + $start + '&end=' + $end)">Sales Analysis</button>
<button data-on-click="$page = 'products'; @get('/sse/dashboard?page=products&start=' + $start + '&end=' + $end + '&top_n=' + $topN)">Product Insights</button>
<button data-on-click="$page = 'customers'; @get('/sse/dashboard?page=customers&start=' + $start + '&end=' + $end)">Customer Demographics</button>
<button data-on-click="$page = 'reviews'; @get('/sse/dashboard?page=reviews&start=' + $start + '&end=' + $end)">Review Analysis</button>
<button data-on-click="$page = 'payments'; @get('/sse/dashboard?page=payments&start=' + $start + '&end=' + $end)">Payment Analysis</button>
<button data-on-click="$page = 'delivery'; @get('/sse/dashboard?page=delivery&start=' + $start + '&end=' + $end)">Delivery Analysis</button>
<div class="filters">
<h3>Filters</h3>
<label>Start date <input type="date" data-bind-start data-on-change="@get('/sse/dashboard?page=' + $page + '&start=' + $start + '&end=' + $end)"/></label>
<label>End date <input type="date" data-bind-end data-on-change="@get('/sse/dashboard?page=' + $page + '&start=' + $start + '&end=' + $end)"/></label>
<label>Top categories <input type="range" min="5" max="20" data-bind-top-n/></label>
</div>
</nav>
<main class="content" data-on-load="@get('/sse/dashboard?page=overview')">
<div id="kpi-strip"></div>
<div id="page-status">Loading…</div>
<div id="charts" data-text="JSON.stringify($dashboard)"></div>
</main>
</body>
</html>`

// Dashboard returns the static page shell as a templ component.
func Dashboard() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, dashboardHTML)
		return err
	})
}
