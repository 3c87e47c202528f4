package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"pet-care-insights/internal/domain/detection"
)

const (
	Name         = "gemini"
	DefaultModel = "gemini-2.5-flash"
)

var (
	ErrNotConfigured = errors.New("gemini client not configured")
	ErrUpstream      = errors.New("gemini upstream error")
)

const prompt = `Identify the main animal in this photo.
Answer ONLY with JSON: {"animalType":"dog|cat|bird|other","breed":"<breed in English or empty>","confidence":<0..1>}.
If there is no animal answer {"animalType":"","breed":"","confidence":0}.`

type Config struct {
	APIKey string
	Model  string
}

// generator es el subconjunto de *genai.Models que se usa (permite fakes en tests).
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type Client struct {
	models generator
	model  string
}

// NewClient sin API key devuelve un cliente no configurado (el selector lo omite).
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	key := strings.TrimSpace(cfg.APIKey)
	if key == "" {
		return &Client{model: model}, nil
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{models: gc.Models, model: model}, nil
}

func (c *Client) Name() string { return Name }

func (c *Client) IsConfigured() bool {
	return c != nil && c.models != nil
}

type answer struct {
	AnimalType string  `json:"animalType"`
	Breed      string  `json:"breed"`
	Confidence float64 `json:"confidence"`
}

func (c *Client) Detect(ctx context.Context, img detection.Image) (detection.Result, error) {
	if !c.IsConfigured() {
		return detection.Result{}, ErrNotConfigured
	}

	mimeType := img.ContentType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(img.Data, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}
	var temperature float32
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      &temperature,
	}

	resp, err := c.models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return detection.Result{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	raw := responseText(resp)
	if raw == "" {
		return detection.Result{}, fmt.Errorf("%w: empty response", ErrUpstream)
	}

	var a answer
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return detection.Result{}, fmt.Errorf("%w: invalid json: %v", ErrUpstream, err)
	}
	if strings.TrimSpace(a.AnimalType) == "" {
		return detection.Result{}, detection.ErrNoAnimal
	}

	return detection.Result{
		Success:    true,
		AnimalType: detection.ParseAnimalType(a.AnimalType),
		Breed:      strings.TrimSpace(a.Breed),
		Confidence: a.Confidence,
		Source:     Name,
	}, nil
}

// responseText junta las partes de texto del primer candidato y quita ```json si viene.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			sb.WriteString(p.Text)
		}
	}
	s := strings.TrimSpace(sb.String())
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
