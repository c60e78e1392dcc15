package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekendz87/droh-admin/internal/common"
	"github.com/bekendz87/droh-admin/internal/session"
)

func readAll(r *http.Request) ([]byte, error) {
	defer func() {
		_ = r.Body.Close()
	}()
	return io.ReadAll(r.Body)
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func testSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.New("test-token")
	require.NoError(t, err)
	s.UserID = "u-1"
	s.Username = "admin"
	return s
}

func TestDoSuccessEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": {"ok": 1}, "message": "done"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testSession(t))
	env, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/x"})
	require.NoError(t, err)

	assert.True(t, env.Success)
	assert.Equal(t, "done", env.Message)
	assert.JSONEq(t, `{"ok": 1}`, string(env.Data))
}

func TestDoResultStringEnvelope(t *testing.T) {
	// The other envelope dialect: result as a string plus one_health_msg.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": "true", "one_health_msg": {"list": [], "count": 0}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testSession(t))
	env, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/x"})
	require.NoError(t, err)

	assert.True(t, env.Success)
	assert.JSONEq(t, `{"list": [], "count": 0}`, string(env.Data))
}

func TestDoBackendRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "X"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testSession(t))
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/x"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "X", apiErr.Message)
	assert.ErrorIs(t, err, common.ErrBackend)
}

func TestDoResultFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": "false", "one_health_msg": "insufficient balance"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testSession(t))
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/x"})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "insufficient balance", apiErr.Message)
}

func TestDoHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := New(srv.URL, testSession(t))
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/x"})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestDoNetworkError(t *testing.T) {
	c := New("http://127.0.0.1:1", testSession(t))
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/x"})

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
}

func TestSessionHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testSession(t))
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/x"})
	require.NoError(t, err)

	assert.Equal(t, "test-token", got.Get("oh_token"))
	assert.Equal(t, "u-1", got.Get("X-User-ID"))
	assert.Equal(t, "admin", got.Get("X-Username"))
}

func TestQueryParamsEncoded(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	params := url.Values{}
	params.Set("from", "2024-01-01T00:00:00.000Z")
	params.Set("branches", "b1,b2")

	c := New(srv.URL, testSession(t))
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/x", Params: params})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01T00:00:00.000Z", got.Get("from"))
	assert.Equal(t, "b1,b2", got.Get("branches"))
}

func TestListInvoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathInvoices, r.URL.Path)
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": {
				"list": [
					{"id": "inv-1", "code": "HD001", "total_credit": 500000, "invoice_type": "payment"},
					{"id": "inv-2", "code": "HD002", "total_credit": "120000.50", "invoice_type": "recharge"}
				],
				"count": 12,
				"report": {"total": 620000.5}
			}
		}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testSession(t))
	page, err := c.ListInvoices(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, page.List, 2)
	assert.Equal(t, 12, page.Count)
	assert.Equal(t, "inv-1", page.List[0].ID)
	assert.Equal(t, "500000", page.List[0].TotalCredit.String())
	assert.Equal(t, "120000.5", page.List[1].TotalCredit.String())
	assert.Equal(t, "620000.5", page.Report["total"].String())
}

func TestRefundPostsJSON(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotBody, _ = readAll(r)
		_, _ = w.Write([]byte(`{"success": true, "message": "refund recorded"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testSession(t))
	msg, err := c.Refund(context.Background(), RefundInput{
		InvoiceID: "inv-1",
		Kind:      RefundPartial,
		Reason:    "duplicate charge",
		Amount:    mustDecimal(t, "150000"),
	})
	require.NoError(t, err)

	assert.Equal(t, "refund recorded", msg)
	assert.Contains(t, string(gotBody), `"invoice_id":"inv-1"`)
	assert.Contains(t, string(gotBody), `"refund_type":"partial"`)
}

func TestDownloadWritesFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "excel", r.URL.Query().Get("export"))
		w.Header().Set("Content-Disposition", `attachment; filename="invoices.xlsx"`)
		_, _ = w.Write([]byte("binary-sheet-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	params := url.Values{}
	params.Set("export", "excel")

	c := New(srv.URL, testSession(t))
	dest, err := c.Download(context.Background(), PathInvoices, params, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "invoices.xlsx"), dest)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "binary-sheet-bytes", string(data))
}

func TestDownloadBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"success": false, "message": "export not allowed"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testSession(t))
	_, err := c.Download(context.Background(), PathInvoices, nil, t.TempDir())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "export not allowed", apiErr.Message)
	assert.False(t, errors.Is(err, context.Canceled))
}
