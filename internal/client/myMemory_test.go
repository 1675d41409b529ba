package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanRulev/nihongo.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMyMemoryAPI_Translate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		want    models.TranslationResult
		wantErr error
	}{
		{
			name:   "success",
			status: http.StatusOK,
			body: `{"responseData":{"translatedText":"chat","match":0.98,"responseStatus":200},
				"matches":[{"translation":"chat"},{"translation":"minou"}]}`,
			want: models.TranslationResult{
				Text:         "chat",
				Match:        0.98,
				Source:       "ja",
				Target:       "fr",
				Reliable:     true,
				Alternatives: []string{"minou"},
			},
		},
		{
			name:   "low confidence",
			status: http.StatusOK,
			body:   `{"responseData":{"translatedText":"chien","match":0.5,"responseStatus":200}}`,
			want: models.TranslationResult{
				Text:   "chien",
				Match:  0.5,
				Source: "ja",
				Target: "fr",
			},
		},
		{
			name:   "provider refusal",
			status: http.StatusOK,
			body:   `{"responseData":{"responseStatus":403,"responseDetails":"INVALID LANGUAGE PAIR"}}`,
			want: models.TranslationResult{
				Source: "ja",
				Target: "fr",
				Error:  "INVALID LANGUAGE PAIR",
			},
		},
		{
			name:    "http error",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			wantErr: models.ErrTranslation,
		},
		{
			name:    "bad json",
			status:  http.StatusOK,
			body:    `{`,
			wantErr: models.ErrTranslation,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/get", r.URL.Path)
				assert.Equal(t, "猫", r.URL.Query().Get("q"))
				assert.Equal(t, "ja|fr", r.URL.Query().Get("langpair"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			api := NewMyMemoryAPI(srv.URL+"/", time.Second)
			got, err := api.Translate(context.Background(), "猫", "ja", "fr")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMyMemoryAPI_Timeout(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	api := NewMyMemoryAPI(srv.URL, 50*time.Millisecond)
	_, err := api.Translate(context.Background(), "猫", "ja", "fr")
	require.ErrorIs(t, err, models.ErrTranslation)
}
