package googlevision

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-care-insights/internal/domain/detection"
	"pet-care-insights/internal/platform/httpclient"
)

const (
	Name            = "googlevision"
	DefaultEndpoint = "https://vision.googleapis.com"
	annotatePath    = "/v1/images:annotate"
	maxLabels       = 15
)

var (
	ErrNotConfigured = errors.New("google vision client not configured")
	ErrUnauthorized  = errors.New("google vision unauthorized")
	ErrUpstream      = errors.New("google vision upstream error")
)

type Config struct {
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// Client usa LABEL_DETECTION de Cloud Vision con API key.
type Client struct {
	apiKey string
	http   *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	hc, err := httpclient.NewWithBaseURL(endpoint, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("googlevision: %w", err)
	}
	return &Client{
		apiKey: strings.TrimSpace(cfg.APIKey),
		http:   hc,
	}, nil
}

func (c *Client) Name() string { return Name }

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

type annotateRequest struct {
	Requests []imageRequest `json:"requests"`
}

type imageRequest struct {
	Image    imagePayload `json:"image"`
	Features []feature    `json:"features"`
}

type imagePayload struct {
	Content string `json:"content"`
}

type feature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type annotateResponse struct {
	Responses []struct {
		LabelAnnotations []struct {
			Description string  `json:"description"`
			Score       float64 `json:"score"`
		} `json:"labelAnnotations"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	} `json:"responses"`
}

func (c *Client) Detect(ctx context.Context, img detection.Image) (detection.Result, error) {
	if !c.IsConfigured() {
		return detection.Result{}, ErrNotConfigured
	}

	in := annotateRequest{Requests: []imageRequest{{
		Image:    imagePayload{Content: base64.StdEncoding.EncodeToString(img.Data)},
		Features: []feature{{Type: "LABEL_DETECTION", MaxResults: maxLabels}},
	}}}

	var out annotateResponse
	path := annotatePath + "?key=" + url.QueryEscape(c.apiKey)
	if err := c.http.DoJSON(ctx, http.MethodPost, path, nil, in, &out); err != nil {
		if httpclient.IsUnauthorized(err) {
			return detection.Result{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return detection.Result{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(out.Responses) == 0 {
		return detection.Result{}, fmt.Errorf("%w: empty responses", ErrUpstream)
	}
	resp := out.Responses[0]
	if resp.Error != nil {
		return detection.Result{}, fmt.Errorf("%w: code=%d %s", ErrUpstream, resp.Error.Code, resp.Error.Message)
	}

	labels := make([]detection.Label, 0, len(resp.LabelAnnotations))
	for _, l := range resp.LabelAnnotations {
		labels = append(labels, detection.Label{Name: l.Description, Score: l.Score})
	}
	return detection.NormalizeLabels(Name, labels)
}
