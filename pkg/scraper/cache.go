package scraper

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// cacheDuration determines how long extracted records are reused
const cacheDuration = 7 * 24 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
	Records   []CourseRecord `json:"records"`
}

// cacheKey addresses an entry by document content, so an edited export never hits a stale entry
func cacheKey(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func getCachePath(key string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".vahedctl_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, key+".json"), nil
}

// ReadCache returns the records previously extracted from an identical document body
func ReadCache(body []byte) ([]CourseRecord, bool) {
	path, err := getCachePath(cacheKey(body))
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	return entry.Records, true
}

// WriteCache saves the records extracted from body; failures are ignored
func WriteCache(source string, body []byte, records []CourseRecord) {
	path, err := getCachePath(cacheKey(body))
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		Source:    source,
		Records:   records,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
