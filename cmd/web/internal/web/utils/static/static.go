package static

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/wicket/static"
)

// CachedFileInfo holds metadata for a cached file used in HTTP cache headers.
type CachedFileInfo struct {
	ETag         string
	Size         int64
	LastModified time.Time
	ContentType  string

	// body is set for generated content that does not live in an fs.FS.
	body []byte
}

// StaticCache manages in-memory metadata for static assets and generated files.
type StaticCache struct {
	fileLock sync.RWMutex
	entries  map[string]CachedFileInfo
	fs       fs.FS
}

// NewStaticCache scans the embedded filesystem and computes ETag and Last-Modified for each file.
func NewStaticCache() (*StaticCache, error) {
	return newCacheFromFS(static.FS)
}

func newCacheFromFS(fsys fs.FS) (*StaticCache, error) {
	c := &StaticCache{
		entries: make(map[string]CachedFileInfo),
		fs:      fsys,
	}

	c.fileLock.Lock()
	defer c.fileLock.Unlock()

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := fsys.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}

		h := sha256.New()
		if _, err := io.Copy(h, f); err != nil {
			return err
		}
		modTime := info.ModTime()
		if modTime.IsZero() {
			modTime = time.Now()
		}

		c.entries[path] = CachedFileInfo{
			ETag:         fmt.Sprintf("\"%x\"", h.Sum(nil)),
			Size:         info.Size(),
			LastModified: modTime,
			ContentType:  contentTypeFor(path),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Put stores generated content under path.
func (s *StaticCache) Put(path, contentType string, body []byte, modTime time.Time) {
	sum := sha256.Sum256(body)
	s.fileLock.Lock()
	defer s.fileLock.Unlock()
	s.entries[path] = CachedFileInfo{
		ETag:         fmt.Sprintf("\"%x\"", sum),
		Size:         int64(len(body)),
		LastModified: modTime,
		ContentType:  contentType,
		body:         body,
	}
}

// Has reports whether path is cached.
func (s *StaticCache) Has(path string) bool {
	s.fileLock.RLock()
	defer s.fileLock.RUnlock()
	_, ok := s.entries[path]
	return ok
}

func contentTypeFor(path string) string {
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}

func cacheHeaderFor(path string) string {
	switch filepath.Ext(path) {
	case ".css", ".js":
		// dist assets are not fingerprinted
		return "no-cache, must-revalidate"
	case ".svg":
		return "public, max-age=300, stale-while-revalidate=60"
	case ".png", ".jpg", ".jpeg", ".gif", ".ico":
		return "public, max-age=31536000, stale-while-revalidate=86400" // 1 year
	case ".woff", ".woff2", ".ttf":
		return "public, max-age=31536000, stale-while-revalidate=86400" // 1 year
	default:
		return "public, max-age=3600, stale-while-revalidate=300" // 1 hour
	}
}

// ServeStaticFile serves cached entries below prefix, answering conditional
// requests with 304.
func (s *StaticCache) ServeStaticFile(prefix string) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := strings.TrimPrefix(c.Request().URL.Path, prefix)

		s.fileLock.RLock()
		ci, ok := s.entries[path]
		s.fileLock.RUnlock()

		if ok {
			if inm := c.Request().Header.Get("If-None-Match"); inm != "" && inm == ci.ETag {
				return c.NoContent(http.StatusNotModified)
			}
			if ims := c.Request().Header.Get(echo.HeaderIfModifiedSince); ims != "" {
				if t, err := time.Parse(http.TimeFormat, ims); err == nil && ci.LastModified.Before(t.Add(time.Second)) {
					return c.NoContent(http.StatusNotModified)
				}
			}
		}

		c.Response().Header().Set(echo.HeaderCacheControl, cacheHeaderFor(path))

		if ok && ci.body != nil {
			c.Response().Header().Set("ETag", ci.ETag)
			c.Response().Header().Set(echo.HeaderLastModified, ci.LastModified.UTC().Format(http.TimeFormat))
			return c.Stream(http.StatusOK, ci.ContentType, bytes.NewReader(ci.body))
		}

		if s.fs == nil {
			return echo.ErrNotFound
		}
		f, err := s.fs.Open(path)
		if err != nil {
			return echo.ErrNotFound
		}
		defer f.Close()

		contentType := contentTypeFor(path)
		if ok {
			c.Response().Header().Set("ETag", ci.ETag)
			c.Response().Header().Set(echo.HeaderLastModified, ci.LastModified.UTC().Format(http.TimeFormat))
			contentType = ci.ContentType
		}

		return c.Stream(http.StatusOK, contentType, f)
	}
}
