// Package tui is the interactive terminal session: a post menu, a stash
// view and a scrolling article reader. One command runs at a time; while a
// fetch is in flight the prompt is locked and a spinner shows.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dootMaster/hugging-face-blog-scraper/internal/browser"
	"github.com/dootMaster/hugging-face-blog-scraper/internal/config"
	"github.com/dootMaster/hugging-face-blog-scraper/internal/logging"
	"github.com/dootMaster/hugging-face-blog-scraper/internal/scrape"
	"github.com/dootMaster/hugging-face-blog-scraper/internal/store"
)

type mode int

const (
	modeMenu mode = iota
	modeStash
	modeReader
)

type App struct {
	cfg     *config.Config
	st      *store.Store
	client  *scrape.Client
	scraper *scrape.Scraper

	mode    mode
	active  []store.Post
	stashed []store.Post
	visible []store.Post

	// lastRead is the 1-based display index of the article most recently
	// opened from the menu; 0 means none. It is only meaningful against the
	// current visible ordering and is reset whenever that could shift.
	lastRead int

	input   textinput.Model
	spin    spinner.Model
	reader  viewport.Model
	article *scrape.Article
	artLink string

	busy   bool
	status string
	width  int
	height int
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg     *config.Config
	Store   *store.Store
	Client  *scrape.Client
	Scraper *scrape.Scraper
	Active  []store.Post
	Stashed []store.Post
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("> ")
	ti.CharLimit = 16
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	a := &App{
		cfg:     opts.Cfg,
		st:      opts.Store,
		client:  opts.Client,
		scraper: opts.Scraper,
		active:  opts.Active,
		stashed: opts.Stashed,
		input:   ti,
		spin:    sp,
		reader:  viewport.New(80, 24),
	}
	a.visible = store.Visible(a.active, a.stashed)
	return a
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// reload re-reads both collections from disk and recomputes the visible
// list. Called after every mutating command so the screen matches disk.
func (a *App) reload() error {
	active, err := a.st.LoadActive()
	if err != nil {
		return err
	}
	stashed, err := a.st.LoadStashed()
	if err != nil {
		return err
	}
	a.active, a.stashed = active, stashed
	a.visible = store.Visible(active, stashed)
	return nil
}

func (a *App) openArticleCmd(index int) tea.Cmd {
	post := a.visible[index-1]
	client := a.client
	timeout := a.cfg.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		article, err := client.FetchArticle(ctx, post.Link)
		if err != nil {
			logging.Warn("article fetch failed", "link", post.Link, "err", err)
			return errMsg{err: err}
		}
		return articleLoadedMsg{index: index, link: post.Link, article: article}
	}
}

func (a *App) refreshCmd() tea.Cmd {
	scraper := a.scraper
	timeout := a.cfg.Timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		posts, err := scraper.Scrape(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return scrapeDoneMsg{posts: posts}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.reader.Width = msg.Width
		a.reader.Height = max(msg.Height-readerChromeLines, 1)
		if a.article != nil {
			a.reader.SetContent(a.renderArticle())
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case scrapeDoneMsg:
		a.busy = false
		a.active = msg.posts
		// The listing changed: the last-read index no longer points at
		// anything meaningful.
		a.lastRead = 0
		a.visible = store.Visible(a.active, a.stashed)
		a.status = fmt.Sprintf("listing refreshed: %d posts", len(msg.posts))
		return a, nil

	case articleLoadedMsg:
		a.busy = false
		art := msg.article
		a.article = &art
		a.artLink = msg.link
		a.lastRead = msg.index
		a.mode = modeReader
		a.reader.SetContent(a.renderArticle())
		a.reader.GotoTop()
		a.status = ""
		return a, nil

	case errMsg:
		a.busy = false
		a.status = msg.err.Error()
		return a, nil

	case spinner.TickMsg:
		if a.busy {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.mode == modeReader {
		return a.handleReaderKey(msg)
	}

	// Menu and stash views: everything funnels through the prompt.
	if msg.Type == tea.KeyEnter {
		if a.busy {
			return a, nil // one operation at a time
		}
		line := a.input.Value()
		a.input.SetValue("")
		if a.mode == modeStash {
			return a.dispatchStash(parseStashCommand(line))
		}
		return a.dispatchMenu(parseMenuCommand(line))
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		a.mode = modeMenu
		a.article = nil
		a.artLink = ""
		return a, nil
	case "o":
		if a.artLink != "" {
			link := a.artLink
			return a, func() tea.Msg {
				if err := browser.Open(link); err != nil {
					return errMsg{err: err}
				}
				return nil
			}
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.reader, cmd = a.reader.Update(msg)
	return a, cmd
}

func (a *App) dispatchMenu(c command) (tea.Model, tea.Cmd) {
	switch c.kind {
	case cmdQuit:
		return a, tea.Quit

	case cmdOpen:
		if c.index > len(a.visible) {
			a.status = fmt.Sprintf("no post #%d", c.index)
			return a, nil
		}
		a.busy = true
		a.status = "fetching article..."
		return a, tea.Batch(a.openArticleCmd(c.index), a.spin.Tick)

	case cmdStashLast:
		if a.lastRead == 0 {
			a.status = "nothing to stash: no article read yet"
			return a, nil
		}
		// Stashing a lower index shifts later referents; the index can
		// even fall off the end of the shrunken list.
		if a.lastRead > len(a.visible) {
			a.lastRead = 0
			a.status = "nothing to stash: last-read post no longer listed"
			return a, nil
		}
		index := a.lastRead
		if a.stashIndex(index) {
			a.lastRead = 0
		}
		return a, nil

	case cmdStashIndex:
		if c.index > len(a.visible) {
			a.status = fmt.Sprintf("no post #%d", c.index)
			return a, nil
		}
		stashedLast := c.index == a.lastRead
		if a.stashIndex(c.index) && stashedLast {
			a.lastRead = 0
		}
		return a, nil

	case cmdStashView:
		a.mode = modeStash
		a.status = ""
		return a, nil

	case cmdRefresh:
		a.busy = true
		a.status = "refreshing listing..."
		return a, tea.Batch(a.refreshCmd(), a.spin.Tick)
	}

	// Unrecognized input: silently re-prompt.
	return a, nil
}

// stashIndex stashes the post at the 1-based visible index and reloads.
// Reports success; a persistence failure lands in the status line.
func (a *App) stashIndex(index int) bool {
	post := a.visible[index-1]
	if err := a.st.Stash(post); err != nil {
		a.status = "stash failed: " + err.Error()
		return false
	}
	if err := a.reload(); err != nil {
		a.status = err.Error()
		return false
	}
	a.status = fmt.Sprintf("stashed %q", post.Title)
	return true
}

func (a *App) dispatchStash(c command) (tea.Model, tea.Cmd) {
	switch c.kind {
	case cmdQuit:
		return a, tea.Quit

	case cmdMenu:
		a.mode = modeMenu
		a.status = ""
		return a, nil

	case cmdUnstash:
		post, err := a.st.Unstash(c.index)
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		if err := a.reload(); err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.status = fmt.Sprintf("unstashed %q", post.Title)
		return a, nil

	case cmdDelete:
		post, err := a.st.DeleteStashed(c.index)
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		if err := a.reload(); err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.status = fmt.Sprintf("deleted %q", post.Title)
		return a, nil
	}

	return a, nil
}

func (a *App) renderArticle() string {
	width := a.cfg.Width()
	if a.reader.Width > 0 && a.reader.Width < width {
		width = a.reader.Width
	}
	return scrape.Render(*a.article, width)
}

// readerChromeLines is the screen space around the viewport: the article
// header block and the hint line.
const readerChromeLines = 4

func (a *App) View() string {
	if a.width == 0 {
		return headerStyle.Render("hfblog")
	}

	switch a.mode {
	case modeReader:
		return a.viewReader()
	case modeStash:
		return a.viewList("stash", a.stashed, "u <n> unstash  d <n> delete  m menu  q quit")
	default:
		return a.viewList("posts", a.visible, "<n> open  s stash last  s <n> stash  v stash view  r refresh  q quit")
	}
}

func (a *App) viewList(name string, posts []store.Post, hints string) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("hfblog") + dateStyle.Render("  "+name) + "\n\n")

	if len(posts) == 0 {
		b.WriteString(statusStyle.Render("(empty)") + "\n")
	}

	// Leave room for header, status, prompt and hints.
	maxRows := a.height - 7
	if maxRows < 1 {
		maxRows = 1
	}
	for i, p := range posts {
		if i == maxRows {
			b.WriteString(statusStyle.Render(fmt.Sprintf("... and %d more", len(posts)-maxRows)) + "\n")
			break
		}
		line := fmt.Sprintf("%s %s",
			indexStyle.Render(fmt.Sprintf("%3d.", i+1)),
			titleStyle.Render(truncateStr(p.Title, a.width-24)),
		)
		if p.Date != "" {
			line += dateStyle.Render("  " + p.Date)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if a.busy {
		b.WriteString(a.spin.View() + " " + statusStyle.Render(a.status) + "\n")
	} else if a.status != "" {
		b.WriteString(errorStyle.Render(a.status) + "\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString(" " + a.input.View() + "\n")
	b.WriteString(hintStyle.Render(hints))

	return b.String()
}

func (a *App) viewReader() string {
	if a.article == nil {
		return statusStyle.Render("no article loaded")
	}

	header := readerHeaderStyle.Render(a.article.Title)
	meta := a.article.Date
	if a.article.Author != "" {
		meta += " · " + a.article.Author
	}
	if len(a.article.Tags) > 0 {
		meta += " · " + strings.Join(a.article.Tags, ", ")
	}

	hint := hintStyle.Render(fmt.Sprintf("%3.0f%%  j/k scroll  pgup/pgdn page  o open  q menu", a.reader.ScrollPercent()*100))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		readerMetaStyle.Render(meta),
		"",
		a.reader.View(),
		hint,
	)
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// Run starts the interactive session.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
