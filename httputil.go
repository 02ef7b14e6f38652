package folio

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"

	"github.com/folioapp/folio/date"
	"github.com/sirupsen/logrus"
)

// http utils to deal with the remote quote service.

// diskCache is an http.RoundTripper caching responses on disk. The cache
// key embeds today's date, so every entry expires at midnight and a day of
// dashboard refreshes hits the provider once per distinct request.
type diskCache struct {
	base http.RoundTripper
	log  *logrus.Logger
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", date.Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	c.log.Debugf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		c.log.Debugf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(os.TempDir(), key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to the disk cache, leaving the response readable.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(os.TempDir(), key), content, 0644)
}

// cachedClient returns an HTTP client with a daily-expiring cache and a
// per-call timeout, so one stalled request can never block a whole pass.
func cachedClient(log *logrus.Logger) *http.Client {
	return &http.Client{
		Timeout:   10 * time.Second,
		Transport: &diskCache{base: http.DefaultTransport, log: log},
	}
}

// jwget performs an HTTP GET and unmarshals the JSON response into data.
func jwget(ctx context.Context, client *http.Client, addr string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	// some quote endpoints reject the default Go user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; folio)")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
