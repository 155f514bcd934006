package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-patient-vault/internal/app"
	"github.com/MKhiriev/go-patient-vault/internal/service"
	"github.com/MKhiriev/go-patient-vault/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type feedTab int

const (
	feedArticles feedTab = iota
	feedRequests
)

// FeedModel shows remote articles and data-sharing requests. Lists come from
// the local cache when the feed is unreachable.
type FeedModel struct {
	ctx  context.Context
	feed service.FeedService

	tab      feedTab
	articles []models.Article
	requests []models.SharingRequest
	answered map[int64]bool
	idx      int
	reading  bool
	loading  int
	status   string
	errMsg   string
}

func NewFeedModel(ctx context.Context, feed service.FeedService) *FeedModel {
	return &FeedModel{ctx: ctx, feed: feed, answered: make(map[int64]bool)}
}

func (m *FeedModel) Init() tea.Cmd {
	m.idx = 0
	m.reading = false
	m.loading = 2
	m.status = ""
	m.errMsg = ""

	ctx := m.ctx
	feed := m.feed
	return tea.Batch(
		func() tea.Msg {
			articles, err := feed.Articles(ctx)
			return articlesLoaded{articles: articles, err: err}
		},
		func() tea.Msg {
			requests, err := feed.SharingRequests(ctx)
			return requestsLoaded{requests: requests, err: err}
		},
	)
}

func (m *FeedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case articlesLoaded:
		m.loading = max(m.loading-1, 0)
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.articles = msg.articles
		return m, nil

	case requestsLoaded:
		m.loading = max(m.loading-1, 0)
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.requests = msg.requests
		return m, nil

	case requestAnswered:
		if msg.err != nil {
			m.errMsg = app.HumanizeError(msg.err)
			return m, nil
		}
		m.answered[msg.requestID] = msg.accepted
		if msg.accepted {
			m.status = "Request accepted"
		} else {
			m.status = "Request declined"
		}
		return m, nil

	case tea.KeyMsg:
		if m.reading {
			if key.Matches(msg, keys.esc, keys.enter) {
				m.reading = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageDashboard, nil)
		case key.Matches(msg, keys.tab):
			if m.tab == feedArticles {
				m.tab = feedRequests
			} else {
				m.tab = feedArticles
			}
			m.idx = 0
			m.status = ""
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < m.size()-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if m.tab == feedArticles && m.idx < len(m.articles) {
				m.reading = true
			}
		case key.Matches(msg, keys.accept):
			return m, m.answer(true)
		case key.Matches(msg, keys.decline):
			return m, m.answer(false)
		}
	}

	return m, nil
}

func (m *FeedModel) size() int {
	if m.tab == feedArticles {
		return len(m.articles)
	}
	return len(m.requests)
}

func (m *FeedModel) answer(accept bool) tea.Cmd {
	if m.tab != feedRequests || m.idx >= len(m.requests) {
		return nil
	}
	m.status = ""
	m.errMsg = ""

	id := m.requests[m.idx].ID
	ctx := m.ctx
	feed := m.feed
	return func() tea.Msg {
		return requestAnswered{requestID: id, accepted: accept, err: feed.RespondToRequest(ctx, id, accept, "")}
	}
}

func (m *FeedModel) View() string {
	var b strings.Builder

	if m.reading {
		article := m.articles[m.idx]
		b.WriteString(titleStyle.Render(article.Title))
		b.WriteString("\n\n")
		b.WriteString(article.FullText)
		return renderPage("ARTICLE", b.String(), "esc: back")
	}

	if m.tab == feedArticles {
		b.WriteString("[Articles]  Requests\n\n")
	} else {
		b.WriteString(" Articles  [Requests]\n\n")
	}

	switch {
	case m.loading > 0:
		b.WriteString("Loading...\n")
	case m.tab == feedArticles && len(m.articles) == 0:
		b.WriteString("No articles\n")
	case m.tab == feedArticles:
		for i, a := range m.articles {
			b.WriteString(fmt.Sprintf("%s %s\n", cursor(i == m.idx), fitText(a.Title, 60)))
		}
	case len(m.requests) == 0:
		b.WriteString("No requests\n")
	default:
		for i, r := range m.requests {
			state := "new"
			if accepted, ok := m.answered[r.ID]; ok && accepted {
				state = "accepted"
			} else if ok {
				state = "declined"
			}
			b.WriteString(fmt.Sprintf("%s %-8s │ %s │ %s..%s\n", cursor(i == m.idx), state, fitText(r.Title, 30),
				valueOrDash(r.DateRange.Start), valueOrDash(r.DateRange.End)))
		}
	}
	writeStatus(&b, m.status, m.errMsg)

	hotKeys := "tab: switch list │ enter: read │ esc: back"
	if m.tab == feedRequests {
		hotKeys = "tab: switch list │ a: accept │ x: decline │ esc: back"
	}
	return renderPage("ARTICLES & REQUESTS", strings.TrimRight(b.String(), "\n"), hotKeys)
}
