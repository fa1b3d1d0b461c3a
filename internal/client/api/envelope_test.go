package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "ok", code: http.StatusOK, body: `{"status":true,"data":[1,2]}`},
		{name: "unauthorized", code: http.StatusUnauthorized, body: ``, wantErr: ErrUnauthorized},
		{name: "forbidden", code: http.StatusForbidden, body: `{}`, wantErr: ErrUnauthorized},
		{name: "garbage body", code: http.StatusOK, body: `<html>boom</html>`, wantErr: ErrUnavailable},
		{name: "missing status field", code: http.StatusOK, body: `{"data":[]}`, wantErr: ErrUnavailable},
		{name: "rejected with message", code: http.StatusOK, body: `{"status":false,"message":"name taken"}`, wantMsg: "name taken"},
		{name: "rejected without message", code: http.StatusOK, body: `{"status":false}`, wantMsg: "request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := decodeEnvelope(tt.code, []byte(tt.body))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantMsg != "" {
				re, ok := IsRejected(err)
				require.True(t, ok)
				require.Equal(t, tt.wantMsg, re.Message)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, env)
		})
	}
}
