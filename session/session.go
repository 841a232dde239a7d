// Package session owns the process-wide connection to the site: one HTTP
// client, one persistent response cache, one rate limiter. Pages read from
// the cache cost nothing; pages that go to the network are spaced out by a
// fixed delay.
//
// The session is a lazily-initialized singleton. Configure it before first
// use to override defaults; left alone, the first page access configures it
// with a cache under the user's home directory.
package session

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/lkowal/metallum/httpcache"
	"github.com/lkowal/metallum/limiter"
	"github.com/lkowal/metallum/request"
)

const baseURL = "https://www.metal-archives.com"

// Without a browser-like user agent the site answers 4xx.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/102.0.5005.167 Safari/537.36"

// Parsed documents kept in memory, saving repeated sqlite reads and HTML
// parses for pages shared between entities.
const docCacheSize = 100

type Options struct {
	// CacheDir holds the sqlite response cache. Default: ~/.metallum.
	CacheDir string
	// Delay is the minimum time between uncached fetches. Default: 1/3s.
	Delay time.Duration
	// UserAgent overrides the default browser-like user agent.
	UserAgent string
	// Timeout bounds each HTTP request. Default: 30s.
	Timeout time.Duration
}

type Session struct {
	userAgent string
	client    *http.Client
	cache     *httpcache.Cache
	lim       *limiter.Limiter
	docs      map[string]*goquery.Document
}

// New creates a session with the given options, creating the cache
// directory and database file if necessary.
func New(opts Options) (*Session, error) {
	if opts.CacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("error finding home directory for cache: %w", err)
		}
		opts.CacheDir = filepath.Join(home, ".metallum")
	}
	if opts.Delay == 0 {
		opts.Delay = time.Second / 3
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}

	if err := os.MkdirAll(opts.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating cache dir '%s': %w", opts.CacheDir, err)
	}
	cache, err := httpcache.Open(filepath.Join(opts.CacheDir, "metallum.sqlite"))
	if err != nil {
		return nil, err
	}

	return &Session{
		userAgent: opts.UserAgent,
		client:    &http.Client{Timeout: opts.Timeout},
		cache:     cache,
		lim:       limiter.New(opts.Delay),
		docs:      map[string]*goquery.Document{},
	}, nil
}

var (
	defaultMu sync.Mutex
	def       *Session
)

// Configure sets up the process-wide session. It fails if the session is
// already initialized: configuration is fixed for the process lifetime once
// the first page has been read.
func Configure(opts Options) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if def != nil {
		return errors.New("session already configured")
	}
	s, err := New(opts)
	if err != nil {
		return err
	}
	def = s
	return nil
}

// Default returns the process-wide session, initializing it with default
// options on first use.
func Default() (*Session, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if def == nil {
		s, err := New(Options{})
		if err != nil {
			return nil, err
		}
		def = s
	}
	return def, nil
}

// Page returns the parsed document for a resource path, consulting the
// in-memory document cache, then the persistent response cache, and only
// then the network.
func (s *Session) Page(resource string) (*goquery.Document, error) {
	if doc, ok := s.docs[resource]; ok {
		return doc, nil
	}

	fullURL := baseURL + "/" + resource
	body, err := s.cache.Get(fullURL)
	if errors.Is(err, httpcache.ErrMiss) {
		s.lim.Wait()
		body, err = request.Get(s.client, fullURL, s.userAgent)
		s.lim.Bump()
		if err != nil {
			return nil, err
		}
		if err := s.cache.Put(fullURL, body); err != nil {
			return nil, err
		}
		log.Printf("fetched %s", resource)
	} else if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error parsing html from '%s': %w", fullURL, err)
	}

	if len(s.docs) >= docCacheSize {
		clear(s.docs)
	}
	s.docs[resource] = doc
	return doc, nil
}

// Data fetches a raw payload with query parameters. Search results change
// between runs, so they bypass the persistent cache but still honor the
// rate limit.
func (s *Session) Data(resource string, query url.Values) ([]byte, error) {
	fullURL := baseURL + "/" + resource
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}
	s.lim.Wait()
	body, err := request.Get(s.client, fullURL, s.userAgent)
	s.lim.Bump()
	return body, err
}

// Resolve fetches a resource and reports the final URL after redirects.
func (s *Session) Resolve(resource string) (string, error) {
	s.lim.Wait()
	finalURL, err := request.Follow(s.client, baseURL+"/"+resource, s.userAgent)
	s.lim.Bump()
	return finalURL, err
}

// Close releases the persistent cache.
func (s *Session) Close() error {
	return s.cache.Close()
}
