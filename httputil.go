package logbook

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"
)

// http utils shared by the remote feeds (web app store, quotes, FX).

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// the key embeds today's date, so the local cache expires daily.
	key := fmt.Sprintf("%s %s %s", Today(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
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

// put stores a response to the disk cache.
func (c *diskCache) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(os.TempDir(), key))
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client whose responses are cached until the end of the day.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	return junmarshal(resp, data)
}

// jwpost performs an HTTP POST request with a JSON body and unmarshals the
// JSON response into the provided data structure. The body is sent as
// text/plain, the content type the spreadsheet web app accepts without a
// preflight.
func jwpost(client *http.Client, addr string, body any, data any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := client.Post(addr, "text/plain", strings.NewReader(string(payload)))
	if err != nil {
		return err
	}
	return junmarshal(resp, data)
}

func junmarshal(resp *http.Response, data any) error {
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http %v %v/%v: %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	return json.Unmarshal(buf.Bytes(), data)
}
