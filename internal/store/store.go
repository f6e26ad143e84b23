// Package store persists the scraped post listing and the stash of
// already-read posts as two independent JSON files.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Post is one blog listing entry. Link is the identity; Title and Date are
// descriptive only.
type Post struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Date  string `json:"date"`
}

// ErrNoActive reports that the active listing file does not exist, meaning
// a scrape has never run.
var ErrNoActive = errors.New("no post listing on disk (run a scrape first)")

const (
	activeFile  = "posts.json"
	stashedFile = "stash.json"
)

type Store struct {
	dir string
}

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) activePath() string  { return filepath.Join(s.dir, activeFile) }
func (s *Store) stashedPath() string { return filepath.Join(s.dir, stashedFile) }

func readPosts(path string) ([]Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return posts, nil
}

// writePosts writes the collection to a temp file and renames it into place,
// so a reader never observes a partially-written listing.
func writePosts(path string, posts []Post) error {
	if posts == nil {
		posts = []Post{}
	}
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding posts: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing posts: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadActive returns the full scraped listing. A missing file is ErrNoActive:
// unlike the stash, the listing only exists once a scrape has run, and callers
// need to distinguish that from an empty listing.
func (s *Store) LoadActive() ([]Post, error) {
	posts, err := readPosts(s.activePath())
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoActive
	}
	if err != nil {
		return nil, fmt.Errorf("loading posts: %w", err)
	}
	return posts, nil
}

// LoadStashed returns the stash. A missing file is the first-run case and
// yields an empty stash.
func (s *Store) LoadStashed() ([]Post, error) {
	posts, err := readPosts(s.stashedPath())
	if errors.Is(err, os.ErrNotExist) {
		return []Post{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading stash: %w", err)
	}
	return posts, nil
}

func (s *Store) SaveActive(posts []Post) error {
	return writePosts(s.activePath(), posts)
}

func (s *Store) SaveStashed(posts []Post) error {
	return writePosts(s.stashedPath(), posts)
}

// Visible filters active down to posts whose link is not stashed, preserving
// the active ordering. Visibility is computed, never stored.
func Visible(active, stashed []Post) []Post {
	hidden := make(map[string]bool, len(stashed))
	for _, p := range stashed {
		hidden[p.Link] = true
	}
	visible := make([]Post, 0, len(active))
	for _, p := range active {
		if !hidden[p.Link] {
			visible = append(visible, p)
		}
	}
	return visible
}

// Stash appends the post to the stash and persists it. The post stays in the
// active listing; it disappears from view because Visible excludes it.
func (s *Store) Stash(post Post) error {
	stashed, err := s.LoadStashed()
	if err != nil {
		return err
	}
	for _, p := range stashed {
		if p.Link == post.Link {
			return nil // already stashed
		}
	}
	return s.SaveStashed(append(stashed, post))
}

// Unstash removes the post at the 1-based display index from the stash and
// appends it to the active listing. The post's original position in the
// listing is not restored.
func (s *Store) Unstash(index int) (Post, error) {
	stashed, err := s.LoadStashed()
	if err != nil {
		return Post{}, err
	}
	if index < 1 || index > len(stashed) {
		return Post{}, fmt.Errorf("no stashed post #%d", index)
	}
	post := stashed[index-1]
	if err := s.SaveStashed(append(stashed[:index-1], stashed[index:]...)); err != nil {
		return Post{}, err
	}

	active, err := s.LoadActive()
	if errors.Is(err, ErrNoActive) {
		active = nil
	} else if err != nil {
		return Post{}, err
	}
	found := false
	for _, p := range active {
		if p.Link == post.Link {
			found = true
			break
		}
	}
	if !found {
		active = append(active, post)
	}
	if err := s.SaveActive(active); err != nil {
		return Post{}, err
	}
	return post, nil
}

// DeleteStashed permanently removes the post at the 1-based display index.
// The link is dropped from the active listing too; otherwise the post would
// reappear in the visible list, which is computed as active minus stashed.
func (s *Store) DeleteStashed(index int) (Post, error) {
	stashed, err := s.LoadStashed()
	if err != nil {
		return Post{}, err
	}
	if index < 1 || index > len(stashed) {
		return Post{}, fmt.Errorf("no stashed post #%d", index)
	}
	post := stashed[index-1]
	if err := s.SaveStashed(append(stashed[:index-1], stashed[index:]...)); err != nil {
		return Post{}, err
	}

	active, err := s.LoadActive()
	if errors.Is(err, ErrNoActive) {
		return post, nil
	}
	if err != nil {
		return Post{}, err
	}
	kept := active[:0]
	for _, p := range active {
		if p.Link != post.Link {
			kept = append(kept, p)
		}
	}
	if len(kept) != len(active) {
		if err := s.SaveActive(kept); err != nil {
			return Post{}, err
		}
	}
	return post, nil
}
