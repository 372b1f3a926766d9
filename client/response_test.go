package client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultWithHeaders(status int, kv ...string) *QueryResult[[]byte] {
	h := http.Header{}
	for i := 0; i+1 < len(kv); i += 2 {
		h.Set(kv[i], kv[i+1])
	}
	return newQueryResult(status, h, nil, []byte(nil))
}

func TestQueryResultProgress(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		expected Progress
	}{
		{name: "complete", headers: []string{ProgressHeader, "Complete"}, expected: ProgressComplete},
		{name: "incomplete", headers: []string{ProgressHeader, "Incomplete"}, expected: ProgressIncomplete},
		{name: "lower case value", headers: []string{ProgressHeader, "complete"}, expected: ProgressIncomplete},
		{name: "padded value", headers: []string{ProgressHeader, " Complete"}, expected: ProgressIncomplete},
		{name: "absent", expected: ProgressIncomplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := resultWithHeaders(http.StatusOK, tt.headers...)
			assert.Equal(t, tt.expected, res.Progress())
			// Accessors are recomputed from the same headers every time.
			assert.Equal(t, res.Progress(), res.Progress())
		})
	}
}

func TestQueryResultCount(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		expected int64
		wantErr  error
	}{
		{name: "zero", headers: []string{CountHeader, "0"}, expected: 0},
		{name: "forty two", headers: []string{CountHeader, "42"}, expected: 42},
		{name: "absent", wantErr: ErrCountMissing},
		{name: "non numeric", headers: []string{CountHeader, "many"}, wantErr: ErrInvalidCount},
		{name: "empty", headers: []string{CountHeader, ""}, wantErr: ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := resultWithHeaders(http.StatusOK, tt.headers...)
			n, err := res.Count()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestQueryResultRequestID(t *testing.T) {
	res := resultWithHeaders(http.StatusOK, RequestIDHeader, "5F2B1C3A")
	assert.Equal(t, "5F2B1C3A", res.RequestID())
	assert.Empty(t, resultWithHeaders(http.StatusOK).RequestID())
}

func TestQueryResultNonCanonicalHeaderKeys(t *testing.T) {
	h := http.Header{
		"x-log-count":     {"7"},
		"x-log-progress":  {"Complete"},
		"x-log-requestid": {"abc"},
	}
	res := newQueryResult(http.StatusOK, h, nil, []byte(nil))

	n, err := res.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, ProgressComplete, res.Progress())
	assert.Equal(t, "abc", res.RequestID())
}

func TestQueryResultHeaderIsCopied(t *testing.T) {
	h := http.Header{}
	h.Set(ProgressHeader, "Complete")
	res := newQueryResult(http.StatusOK, h, nil, []byte(nil))

	h.Set(ProgressHeader, "Incomplete")
	assert.Equal(t, ProgressComplete, res.Progress())

	res.Header().Set(ProgressHeader, "Incomplete")
	assert.Equal(t, ProgressComplete, res.Progress())
}

func TestQueryResultRemoteError(t *testing.T) {
	ok := resultWithHeaders(http.StatusOK)
	assert.True(t, ok.IsSuccess())
	assert.Nil(t, ok.RemoteError())
	assert.NoError(t, ok.Err())

	h := http.Header{}
	h.Set(RequestIDHeader, "req-1")
	body := []byte(`{"errorCode":"LogStoreNotExist","errorMessage":"logstore store1 does not exist"}`)
	res := newQueryResult(http.StatusNotFound, h, body, body)

	assert.False(t, res.IsSuccess())
	remoteErr := res.RemoteError()
	require.NotNil(t, remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.StatusCode)
	assert.Equal(t, "LogStoreNotExist", remoteErr.Code)
	assert.Equal(t, "logstore store1 does not exist", remoteErr.Message)
	assert.Equal(t, "req-1", remoteErr.RequestID)

	var target *RemoteError
	require.ErrorAs(t, res.Err(), &target)
	assert.Equal(t, "LogStoreNotExist", target.Code)
}

func TestQueryResultRemoteErrorPlainBody(t *testing.T) {
	body := []byte("bad gateway\n")
	res := newQueryResult(http.StatusBadGateway, http.Header{}, body, body)

	remoteErr := res.RemoteError()
	require.NotNil(t, remoteErr)
	assert.Empty(t, remoteErr.Code)
	assert.Equal(t, "bad gateway", remoteErr.Message)
	assert.Contains(t, remoteErr.Error(), "status 502")
}
