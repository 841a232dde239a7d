// Package httpcache is the persistent response cache. Every page fetched
// from the site is stored in a sqlite3 database file keyed by a hash of its
// URL, so re-reads never touch the network.
package httpcache

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrMiss = errors.New("cache miss")

//go:embed schema.sql
var schema string

// Cache represents our sqlite3 response-cache file.
type Cache struct{ db *gorm.DB }

// A Page is one cached response body.
type Page struct {
	Hash      string `gorm:"primaryKey"`
	URL       string
	Body      []byte
	FetchedAt time.Time
}

// Open returns a connection to a migrated sqlite3 cache file on disk,
// creating the file and running migrations if necessary.
func Open(filename string) (*Cache, error) {
	gdb, err := gorm.Open(sqlite.Open(filename), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, fmt.Errorf("error opening cache file at '%s': %w", filename, err)
	}

	c := &Cache{gdb}

	if err := gdb.Exec(schema).Error; err != nil {
		return nil, fmt.Errorf("error migrating cache at '%s': %w", filename, err)
	}

	return c, nil
}

// Get returns the cached body for the given URL, or ErrMiss.
func (c *Cache) Get(url string) ([]byte, error) {
	var page Page
	err := c.db.
		Where("hash = ?", hashKey(url)).
		First(&page).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("cache miss for '%s': %w", url, ErrMiss)
	} else if err != nil {
		return nil, fmt.Errorf("error reading cache for '%s': %w", url, err)
	}
	return page.Body, nil
}

// Put stores the body for the given URL, replacing any previous entry.
func (c *Cache) Put(url string, body []byte) error {
	page := Page{
		Hash:      hashKey(url),
		URL:       url,
		Body:      body,
		FetchedAt: time.Now(),
	}
	if err := c.db.
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&page).
		Error; err != nil {
		return fmt.Errorf("error caching '%s': %w", url, err)
	}
	return nil
}

// Close closes the underlying database connection pool.
func (c *Cache) Close() error {
	pool, err := c.db.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}

func hashKey(key string) string {
	var hasher = sha256.New()
	hasher.Write([]byte(key))
	return hex.EncodeToString(hasher.Sum(nil))
}
