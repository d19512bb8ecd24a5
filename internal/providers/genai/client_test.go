package genai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(Options{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func inlineResponse(mime string, data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	return `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"` + mime + `","data":"` + encoded + `"}}]}}]}`
}

func TestGenerateImageReturnsInlineImage(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiGenerateContentRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(inlineResponse("image/png", []byte("fake-image"))))
	})

	result, err := client.GenerateImage(context.Background(), "secret-key", []ImageInput{
		{Data: []byte("source"), MIME: "image/jpeg"},
	}, "buat foto produk")
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if string(result.Data) != "fake-image" {
		t.Fatalf("unexpected image payload %q", result.Data)
	}
	if result.MIME != "image/png" {
		t.Fatalf("unexpected mime %q", result.MIME)
	}
	if !strings.Contains(gotPath, "gemini-2.5-flash-image-preview") {
		t.Fatalf("request hit model path %q", gotPath)
	}
	if gotKey != "secret-key" {
		t.Fatalf("api key query = %q", gotKey)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 2 {
		t.Fatalf("unexpected request contents %+v", gotBody.Contents)
	}
	if gotBody.Contents[0].Parts[0].InlineData == nil {
		t.Fatal("reference image not sent inline")
	}
	if gotBody.Contents[0].Parts[1].Text != "buat foto produk" {
		t.Fatalf("prompt part = %q", gotBody.Contents[0].Parts[1].Text)
	}
	if gotBody.GenerationConfig == nil || len(gotBody.GenerationConfig.ResponseModalities) != 2 {
		t.Fatalf("generation config = %+v", gotBody.GenerationConfig)
	}
}

func TestGenerateImageTextOnlyIsNoImageError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"I cannot generate that image."}]}}]}`))
	})

	_, err := client.GenerateImage(context.Background(), "k", nil, "prompt")
	var noImage *NoImageError
	if !errors.As(err, &noImage) {
		t.Fatalf("expected NoImageError, got %v", err)
	}
	if noImage.ModelText != "I cannot generate that image." {
		t.Fatalf("model text = %q", noImage.ModelText)
	}
}

func TestGenerateImageSurfacesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid"}}`))
	})

	_, err := client.GenerateImage(context.Background(), "bad", nil, "prompt")
	if err == nil || !strings.Contains(err.Error(), "API key not valid") {
		t.Fatalf("expected API error message, got %v", err)
	}
}

func TestGenerateStructuredParsesFencedJSON(t *testing.T) {
	var gotBody geminiGenerateContentRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"` +
			"```json\\n{\\\"angleStyle\\\":\\\"Eye-Level\\\"}\\n```" + `"}]}}]}`))
	})

	schema := &Schema{
		Type: "OBJECT",
		Properties: map[string]*Schema{
			"angleStyle": {Type: "STRING"},
		},
	}
	var out struct {
		AngleStyle string `json:"angleStyle"`
	}
	err := client.GenerateStructured(context.Background(), "k", nil, "recommend", schema, &out)
	if err != nil {
		t.Fatalf("GenerateStructured: %v", err)
	}
	if out.AngleStyle != "Eye-Level" {
		t.Fatalf("angleStyle = %q", out.AngleStyle)
	}
	if gotBody.GenerationConfig == nil || gotBody.GenerationConfig.ResponseMimeType != "application/json" {
		t.Fatalf("generation config = %+v", gotBody.GenerationConfig)
	}
	if gotBody.GenerationConfig.ResponseSchema == nil {
		t.Fatal("response schema not sent")
	}
	if !strings.Contains(gotBody.Contents[0].Parts[0].Text, "recommend") {
		t.Fatalf("prompt not sent: %+v", gotBody.Contents[0].Parts)
	}
}

func TestGenerateStructuredRejectsGarbage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"sorry, no JSON here"}]}}]}`))
	})

	var out map[string]any
	err := client.GenerateStructured(context.Background(), "k", nil, "prompt", &Schema{Type: "OBJECT"}, &out)
	if err == nil {
		t.Fatal("expected error for non-JSON payload")
	}
}

func TestExtractJSONFragment(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose wrapped", `Here you go: {"a":1} hope it helps`, `{"a":1}`},
		{"array", `[1,2,3]`, `[1,2,3]`},
		{"empty", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSONFragment(tc.in); got != tc.want {
				t.Fatalf("extractJSONFragment(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
