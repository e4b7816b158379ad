package web

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/track/internal/date"
	"github.com/erazemk/track/internal/derive"
	"github.com/erazemk/track/internal/model"
	"github.com/erazemk/track/internal/query"
)

// itemCard is an item as shown in the grid and list views.
type itemCard struct {
	model.Item
	derive.Metrics
	HasImage bool
}

func (s *Server) cards(r *http.Request, items []model.Item, ref date.Date) []itemCard {
	images, err := s.App.HasImages(r.Context())
	if err != nil {
		slog.Error("failed to list item photos", "error", err)
	}
	cards := make([]itemCard, 0, len(items))
	for _, it := range items {
		cards = append(cards, itemCard{Item: it, Metrics: derive.For(it, ref), HasImage: images[it.ID]})
	}
	return cards
}

// Dashboard handles GET /?category=&status=&sort=&view=.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	criteria := query.Criteria{Category: params.Get("category"), Status: params.Get("status")}
	if criteria.Category == "" {
		criteria.Category = query.All
	}
	if criteria.Status == "" {
		criteria.Status = query.All
	}
	order, _ := query.ParseOrder(params.Get("sort"))
	view := params.Get("view")
	if view != "list" {
		view = "grid"
	}

	today := s.App.Today()
	items := s.App.List(criteria, order)

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Stats      derive.Statistics
		Items      []itemCard
		Categories []string
		Statuses   []model.Status
		Orders     []query.Order
		Criteria   query.Criteria
		Order      query.Order
		View       string
	}{
		PageData:   s.page(r, "home", "home"),
		Stats:      s.App.Statistics(),
		Items:      s.cards(r, items, today),
		Categories: s.App.Categories(),
		Statuses:   model.Statuses,
		Orders:     query.Orders(),
		Criteria:   criteria,
		Order:      order,
		View:       view,
	})
}

// SearchPage handles GET /search?q=.
func (s *Server) SearchPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	s.Templates.Render(w, "search.html", &struct {
		PageData
		Query string
		Items []itemCard
		View  string
	}{
		PageData: s.page(r, "search", "search"),
		Query:    q,
		Items:    s.cards(r, s.App.Search(q), s.App.Today()),
		View:     "list",
	})
}
