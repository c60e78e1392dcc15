package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Download streams a server-generated export to a file under destDir and
// returns the written path. Export responses are raw file bodies, not the
// JSON envelope, so this bypasses Do entirely.
func (c *Client) Download(ctx context.Context, path string, params url.Values, destDir string) (string, error) {
	req, err := c.buildRequest(ctx, Request{Method: http.MethodGet, Path: path, Params: params})
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Message: "could not reach the DROH backend", cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := http.StatusText(resp.StatusCode)
		if env, parseErr := parseEnvelope(body); parseErr == nil && env.Message != "" {
			msg = env.Message
		}
		return "", &Error{Status: resp.StatusCode, Message: msg}
	}

	name := downloadName(resp, params)
	if err := os.MkdirAll(destDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}
	dest := filepath.Join(destDir, name)

	f, err := os.Create(dest) // #nosec G304 -- dest is derived from destDir
	if err != nil {
		return "", fmt.Errorf("failed to create download file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	bar := progressbar.DefaultBytes(resp.ContentLength, "downloading "+name)
	if _, err := io.Copy(io.MultiWriter(f, bar), resp.Body); err != nil {
		_ = os.Remove(dest)
		return "", fmt.Errorf("download interrupted: %w", err)
	}

	return dest, nil
}

// downloadName prefers the backend's Content-Disposition filename and
// falls back to a timestamped name with an extension matching the export
// kind.
func downloadName(resp *http.Response, params url.Values) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, p, err := mime.ParseMediaType(cd); err == nil {
			if name := filepath.Base(p["filename"]); name != "" && name != "." {
				return name
			}
		}
	}

	ext := ".xlsx"
	if params.Get("export") == "pdf" {
		ext = ".pdf"
	}
	title := params.Get("title")
	if title == "" {
		title = "droh-report"
	}
	return fmt.Sprintf("%s-%s%s", title, time.Now().Format("20060102-150405"), ext)
}
