package services

import "testing"

func TestValidPage(t *testing.T) {
	for _, p := range Pages {
		if !ValidPage(p) {
			t.Errorf("ValidPage(%q) = false, want true", p)
		}
	}
	if ValidPage("settings") {
		t.Error("ValidPage accepted an unknown page")
	}
}

func TestRender_UnknownPage(t *testing.T) {
	a := newTestAnalytics()
	if _, err := a.Render("nope", date(2018, 1, 1), date(2018, 1, 31), 0); err == nil {
		t.Error("expected an error for an unknown page")
	}
}

func TestRender_PopulatesExactlyOneReport(t *testing.T) {
	a := newTestAnalytics()

	for _, page := range Pages {
		state, err := a.Render(page, date(2018, 1, 1), date(2018, 12, 31), 0)
		if err != nil {
			t.Fatalf("Render(%q) failed: %v", page, err)
		}
		if state.Page != page {
			t.Errorf("state.Page = %q, want %q", state.Page, page)
		}
		if state.Start != "2018-01-01" || state.End != "2018-12-31" {
			t.Errorf("state range = %s..%s, want 2018-01-01..2018-12-31", state.Start, state.End)
		}

		populated := 0
		for _, present := range []bool{
			state.Overview != nil,
			state.Sales != nil,
			state.Products != nil,
			state.Customers != nil,
			state.Reviews != nil,
			state.Payments != nil,
			state.Delivery != nil,
		} {
			if present {
				populated++
			}
		}
		if populated != 1 {
			t.Errorf("Render(%q) populated %d reports, want 1", page, populated)
		}
	}
}

func TestRender_ProductsCarriesClampedTopN(t *testing.T) {
	a := newTestAnalytics()

	state, err := a.Render(PageProducts, date(2018, 1, 1), date(2018, 12, 31), 50)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if state.TopN != MaxTopN {
		t.Errorf("state.TopN = %d, want %d", state.TopN, MaxTopN)
	}
	if state.Products.TopN != MaxTopN {
		t.Errorf("report TopN = %d, want %d", state.Products.TopN, MaxTopN)
	}
}
