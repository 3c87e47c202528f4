package gemini

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	"pet-care-insights/internal/domain/detection"
)

type fakeModels struct {
	text string
	err  error

	gotModel    string
	gotContents []*genai.Content
	gotConfig   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.gotModel, f.gotContents, f.gotConfig = model, contents, config
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(f.text, genai.RoleModel)}},
	}, nil
}

func TestDetect_ParsesJSONAnswer(t *testing.T) {
	fm := &fakeModels{text: "```json\n{\"animalType\":\"Dog\",\"breed\":\"Beagle\",\"confidence\":0.83}\n```"}
	c := &Client{models: fm, model: "m-test"}

	r, err := c.Detect(context.Background(), detection.Image{Data: []byte("img"), ContentType: "image/png"})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if r.AnimalType != detection.AnimalDog || r.Breed != "Beagle" || r.Confidence != 0.83 || r.Source != Name {
		t.Fatalf("unexpected result %+v", r)
	}

	if fm.gotModel != "m-test" {
		t.Fatalf("expected model m-test, got %q", fm.gotModel)
	}
	if fm.gotConfig == nil || fm.gotConfig.ResponseMIMEType != "application/json" {
		t.Fatalf("expected json response mime type")
	}
	parts := fm.gotContents[0].Parts
	if len(parts) != 2 || parts[0].InlineData == nil || parts[0].InlineData.MIMEType != "image/png" {
		t.Fatalf("expected inline image part first, got %+v", parts)
	}
}

func TestDetect_NoAnimal(t *testing.T) {
	c := &Client{models: &fakeModels{text: `{"animalType":"","breed":"","confidence":0}`}, model: DefaultModel}

	_, err := c.Detect(context.Background(), detection.Image{Data: []byte("x")})
	if !errors.Is(err, detection.ErrNoAnimal) {
		t.Fatalf("expected ErrNoAnimal, got %v", err)
	}
}

func TestDetect_UpstreamErrors(t *testing.T) {
	cases := []*fakeModels{
		{err: errors.New("quota exceeded")},
		{text: ""},
		{text: "a dog, probably"},
	}
	for i, fm := range cases {
		c := &Client{models: fm, model: DefaultModel}
		if _, err := c.Detect(context.Background(), detection.Image{Data: []byte("x")}); !errors.Is(err, ErrUpstream) {
			t.Fatalf("case %d: expected ErrUpstream, got %v", i, err)
		}
	}
}

func TestNewClient_WithoutKeyIsNotConfigured(t *testing.T) {
	c, err := NewClient(context.Background(), Config{})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.IsConfigured() {
		t.Fatalf("expected not configured")
	}
	if _, err := c.Detect(context.Background(), detection.Image{}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
