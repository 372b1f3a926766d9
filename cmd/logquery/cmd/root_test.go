package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/forestrie/go-logquery/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runRoot(t *testing.T, handler http.HandlerFunc, args ...string) (string, error) {
	t.Helper()

	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)

	root := newRootCmd(client.WithHTTPClient(srv.Client()))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{
		"--endpoint", strings.TrimPrefix(srv.URL, "https://"),
		"--access-key-id", "AKID",
		"--access-key-secret", "SECRET",
	}, args...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLogsCommand(t *testing.T) {
	out, err := runRoot(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/logstores/nginx/index", r.URL.Path)
		assert.Equal(t, "log", q.Get("type"))
		assert.Equal(t, "1000", q.Get("from"))
		assert.Equal(t, "2000", q.Get("to"))
		assert.Equal(t, "5", q.Get("line"))
		assert.Equal(t, "true", q.Get("reverse"))
		assert.NotEmpty(t, r.Header.Get("Authorization"))

		w.Header().Set(client.CountHeader, "1")
		w.Header().Set(client.ProgressHeader, "Complete")
		w.Header().Set(client.RequestIDHeader, "req-1")
		w.Write([]byte(`[{"__topic__":"t","__source__":"s","__time__":"1500","msg":"hello"}]`))
	}, "logs", "nginx", "--from", "1000", "--to", "2000", "--line", "5", "--reverse")
	require.NoError(t, err)

	var view struct {
		Status    int                 `json:"status"`
		RequestID string              `json:"requestId"`
		Progress  string              `json:"progress"`
		Count     int64               `json:"count"`
		Data      []map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, http.StatusOK, view.Status)
	assert.Equal(t, "req-1", view.RequestID)
	assert.Equal(t, "Complete", view.Progress)
	assert.Equal(t, int64(1), view.Count)
	require.Len(t, view.Data, 1)
	assert.Equal(t, "hello", view.Data[0]["msg"])
}

func TestHistogramsCommandYAML(t *testing.T) {
	out, err := runRoot(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "histogram", r.URL.Query().Get("type"))
		assert.Equal(t, "status:500", r.URL.Query().Get("query"))
		w.Write([]byte(`[{"from":1000,"to":2000,"count":4,"progress":"Complete"}]`))
	}, "histograms", "nginx", "--from", "1000", "--to", "2000", "-q", "status:500", "-o", "yaml")
	require.NoError(t, err)

	var view struct {
		Status   int                      `yaml:"status"`
		Progress string                   `yaml:"progress"`
		Data     []client.HistogramEntity `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.Equal(t, http.StatusOK, view.Status)
	assert.Equal(t, "Incomplete", view.Progress)
	require.Len(t, view.Data, 1)
	assert.Equal(t, int64(4), view.Data[0].Count)
	assert.Equal(t, client.ProgressComplete, view.Data[0].Progress)
}

func TestCommandRemoteError(t *testing.T) {
	out, err := runRoot(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errorCode":"Unauthorized","errorMessage":"denied"}`))
	}, "logs", "nginx", "--from", "1000", "--to", "2000")

	var remoteErr *client.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "Unauthorized", remoteErr.Code)
	assert.Empty(t, out)
}

func TestCommandRejectsUnknownOutput(t *testing.T) {
	_, err := runRoot(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}, "logs", "nginx", "-o", "xml")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestTimeRangeResolve(t *testing.T) {
	now := time.Unix(10_000, 0)

	tests := []struct {
		name     string
		tr       timeRange
		wantFrom int64
		wantTo   int64
		wantErr  bool
	}{
		{name: "defaults", tr: timeRange{since: 15 * time.Minute}, wantFrom: 10_000 - 900, wantTo: 10_000},
		{name: "explicit", tr: timeRange{from: 100, to: 200}, wantFrom: 100, wantTo: 200},
		{name: "to only", tr: timeRange{to: 5000, since: time.Minute}, wantFrom: 4940, wantTo: 5000},
		{name: "inverted", tr: timeRange{from: 300, to: 200}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := tt.tr.resolve(now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}
