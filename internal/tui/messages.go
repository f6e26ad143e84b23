package tui

import (
	"github.com/dootMaster/hugging-face-blog-scraper/internal/scrape"
	"github.com/dootMaster/hugging-face-blog-scraper/internal/store"
)

type scrapeDoneMsg struct {
	posts []store.Post
}

type articleLoadedMsg struct {
	index   int // 1-based display index the article was opened from
	link    string
	article scrape.Article
}

type errMsg struct {
	err error
}
