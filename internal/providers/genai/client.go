// Package genai is a thin HTTP client for the Gemini generateContent API.
// It covers the two shapes this service needs: image generation from a text
// prompt plus reference images, and structured JSON answers.
package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"anostudio/internal/infra"
)

// Options controls how the Gemini client is configured. The API key is not
// part of the options: keys live in the credentials store and are passed per
// call so a key rotation takes effect without rebuilding clients.
type Options struct {
	BaseURL    string
	ImageModel string
	TextModel  string
	HTTPClient *http.Client
	Logger     *infra.Logger
}

// Client invokes Gemini over plain HTTP.
type Client struct {
	baseURL    string
	imageModel string
	textModel  string
	httpClient *http.Client
	logger     *infra.Logger
}

// ImageInput is a reference image sent inline with a request.
type ImageInput struct {
	Data []byte
	MIME string
}

// ImageResult is a generated image returned by the model.
type ImageResult struct {
	Data []byte
	MIME string
}

// Schema mirrors the subset of the Gemini responseSchema format we use.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
	ResponseMimeType   string   `json:"responseMimeType,omitempty"`
	ResponseSchema     *Schema  `json:"responseSchema,omitempty"`
}

type geminiGenerateContentRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type geminiGenerateContentResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// NewClient constructs a Gemini client with sane defaults. Callers may
// provide a nil HTTP client; a reusable one with a generous timeout is
// created, since image generation regularly takes tens of seconds.
func NewClient(opts Options) (*Client, error) {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 120 * time.Second}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	imageModel := opts.ImageModel
	if imageModel == "" {
		imageModel = "gemini-2.5-flash-image-preview"
	}
	textModel := opts.TextModel
	if textModel == "" {
		textModel = "gemini-2.5-flash"
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	return &Client{
		baseURL:    baseURL,
		imageModel: imageModel,
		textModel:  textModel,
		httpClient: client,
		logger:     logger,
	}, nil
}

// ImageModel returns the configured image model identifier.
func (c *Client) ImageModel() string { return c.imageModel }

// TextModel returns the configured text model identifier.
func (c *Client) TextModel() string { return c.textModel }

// GenerateImage sends the reference images and prompt to the image model and
// returns the first inline image in the response. A response with candidates
// but no image yields a *NoImageError carrying whatever text the model sent
// back, so callers can surface it to the user.
func (c *Client) GenerateImage(ctx context.Context, apiKey string, refs []ImageInput, prompt string) (*ImageResult, error) {
	parts := make([]geminiPart, 0, len(refs)+1)
	for _, ref := range refs {
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: ref.MIME,
			Data:     base64.StdEncoding.EncodeToString(ref.Data),
		}})
	}
	parts = append(parts, geminiPart{Text: prompt})

	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
		},
	}

	var response geminiGenerateContentResponse
	if err := c.invoke(ctx, c.imageModel, apiKey, payload, &response); err != nil {
		return nil, err
	}
	if len(response.Candidates) == 0 {
		return nil, fmt.Errorf("gemini returned no candidates")
	}

	var modelText strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part.InlineData != nil && part.InlineData.Data != "" {
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("decode inline image: %w", err)
			}
			mime := part.InlineData.MimeType
			if mime == "" {
				mime = "image/png"
			}
			return &ImageResult{Data: data, MIME: mime}, nil
		}
		if part.Text != "" {
			modelText.WriteString(part.Text)
		}
	}

	err := &NoImageError{ModelText: strings.TrimSpace(modelText.String())}
	c.logger.Warn().
		Str("model", c.imageModel).
		Str("model_text", err.ModelText).
		Msg("genai: response carried no image")
	return nil, err
}

// GenerateStructured asks the text model for a JSON answer matching schema
// and unmarshals it into out. Reference images, when given, are sent inline
// ahead of the prompt.
func (c *Client) GenerateStructured(ctx context.Context, apiKey string, refs []ImageInput, prompt string, schema *Schema, out any) error {
	parts := make([]geminiPart, 0, len(refs)+1)
	for _, ref := range refs {
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: ref.MIME,
			Data:     base64.StdEncoding.EncodeToString(ref.Data),
		}})
	}
	parts = append(parts, geminiPart{Text: prompt})

	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	}

	var response geminiGenerateContentResponse
	if err := c.invoke(ctx, c.textModel, apiKey, payload, &response); err != nil {
		return err
	}

	text := firstText(response)
	fragment := extractJSONFragment(text)
	if fragment == "" {
		return fmt.Errorf("gemini returned no parseable payload")
	}
	if err := json.Unmarshal([]byte(fragment), out); err != nil {
		return fmt.Errorf("decode structured payload: %w", err)
	}
	return nil
}

func (c *Client) invoke(ctx context.Context, model, apiKey string, payload any, out any) error {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(model))
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	q := req.URL.Query()
	if apiKey != "" {
		q.Set("key", apiKey)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("invoke gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr geminiErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		data, _ := io.ReadAll(resp.Body)
		if len(data) > 0 {
			return fmt.Errorf("gemini status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}

func firstText(resp geminiGenerateContentResponse) string {
	var sb strings.Builder
	for _, candidate := range resp.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
		if sb.Len() > 0 {
			break
		}
	}
	return sb.String()
}
