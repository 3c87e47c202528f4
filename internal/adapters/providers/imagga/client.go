package imagga

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"pet-care-insights/internal/domain/detection"
	"pet-care-insights/internal/platform/httpclient"
)

const (
	Name            = "imagga"
	DefaultEndpoint = "https://api.imagga.com"
	tagsPath        = "/v2/tags"
)

var (
	ErrNotConfigured = errors.New("imagga client not configured")
	ErrUnauthorized  = errors.New("imagga unauthorized")
	ErrUpstream      = errors.New("imagga upstream error")
)

type Config struct {
	Endpoint  string
	APIKey    string
	APISecret string
	Timeout   time.Duration
}

// Client llama a /v2/tags con basic auth (key:secret).
// Imagga devuelve confidence en 0..100; se normaliza a 0..1.
type Client struct {
	authHeader string
	http       *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	hc, err := httpclient.NewWithBaseURL(endpoint, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("imagga: %w", err)
	}

	c := &Client{http: hc}
	key, secret := strings.TrimSpace(cfg.APIKey), strings.TrimSpace(cfg.APISecret)
	if key != "" && secret != "" {
		c.authHeader = "Basic " + base64.StdEncoding.EncodeToString([]byte(key+":"+secret))
	}
	return c, nil
}

func (c *Client) Name() string { return Name }

func (c *Client) IsConfigured() bool {
	return c != nil && c.authHeader != ""
}

type tagsResponse struct {
	Result struct {
		Tags []struct {
			Confidence float64           `json:"confidence"`
			Tag        map[string]string `json:"tag"`
		} `json:"tags"`
	} `json:"result"`
	Status struct {
		Text string `json:"text"`
		Type string `json:"type"`
	} `json:"status"`
}

func (c *Client) Detect(ctx context.Context, img detection.Image) (detection.Result, error) {
	if !c.IsConfigured() {
		return detection.Result{}, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("image_base64", base64.StdEncoding.EncodeToString(img.Data))

	var out tagsResponse
	err := c.http.DoForm(ctx, tagsPath, map[string]string{"Authorization": c.authHeader}, form, &out)
	if err != nil {
		if httpclient.IsUnauthorized(err) {
			return detection.Result{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return detection.Result{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if out.Status.Type != "" && out.Status.Type != "success" {
		return detection.Result{}, fmt.Errorf("%w: status=%s %s", ErrUpstream, out.Status.Type, out.Status.Text)
	}

	labels := make([]detection.Label, 0, len(out.Result.Tags))
	for _, t := range out.Result.Tags {
		name := t.Tag["en"]
		if name == "" {
			continue
		}
		labels = append(labels, detection.Label{Name: name, Score: t.Confidence / 100})
	}
	return detection.NormalizeLabels(Name, labels)
}
