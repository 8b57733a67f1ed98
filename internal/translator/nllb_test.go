package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNLLBTestClient(srv *httptest.Server) *NLLBClient {
	return NewNLLBClient(NLLBConfig{
		BaseURL: srv.URL,
		Model:   "facebook/nllb-200-distilled-600M",
	})
}

// =============================================================================
// TranslateSingle
// =============================================================================

func TestNLLBClient_TranslateSingle(t *testing.T) {
	var got translateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/translate", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "ជំរាបសួរ"})
	}))
	defer srv.Close()

	client := newNLLBTestClient(srv)
	out, err := client.TranslateSingle(context.Background(), "Hello", "eng_Latn", "khm_Khmr")

	require.NoError(t, err)
	assert.Equal(t, "ជំរាបសួរ", out)
	assert.Equal(t, "facebook/nllb-200-distilled-600M", got.Model)
	assert.Equal(t, "Hello", got.Text)
	assert.Equal(t, "eng_Latn", got.SourceLang)
	assert.Equal(t, "khm_Khmr", got.TargetLang)
	// Defaults are forwarded when no decoding options were configured.
	assert.Equal(t, 5, got.Options.NumBeams)
	assert.Equal(t, 2048, got.Options.MaxOutputTokens)
	assert.InDelta(t, 1.2, got.Options.LengthPenalty, 1e-9)
}

func TestNLLBClient_ServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model is loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newNLLBTestClient(srv).TranslateSingle(context.Background(), "Hello", "eng_Latn", "khm_Khmr")

	assert.True(t, IsNotReady(err))
}

func TestNLLBClient_InvalidLanguage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unsupported source_lang code", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newNLLBTestClient(srv).TranslateSingle(context.Background(), "Hello", "bad_Code", "khm_Khmr")

	assert.True(t, IsInvalidLanguage(err))
}

func TestNLLBClient_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "generation blew up", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newNLLBTestClient(srv).TranslateSingle(context.Background(), "Hello", "eng_Latn", "khm_Khmr")

	assert.Equal(t, ErrTranslationFailed.Code, ErrorCode(err))
	assert.False(t, IsNotReady(err))
}

func TestNLLBClient_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newNLLBTestClient(srv).TranslateSingle(context.Background(), "Hello", "eng_Latn", "khm_Khmr")

	assert.True(t, IsNotReady(err))
}

// =============================================================================
// Health
// =============================================================================

func TestNLLBClient_Health(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newNLLBTestClient(srv)
	assert.NoError(t, client.Health(context.Background()))

	healthy = false
	assert.True(t, IsNotReady(client.Health(context.Background())))
}

func TestNLLBClient_Defaults(t *testing.T) {
	client := NewNLLBClient(NLLBConfig{})

	assert.Equal(t, "facebook/nllb-200-distilled-600M", client.ModelName())
	assert.Equal(t, DefaultNLLBConfig().Options, client.options)
}
