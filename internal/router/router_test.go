package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pet-care-insights/internal/adapters/providers/googlevision"
	"pet-care-insights/internal/adapters/providers/imagga"
	"pet-care-insights/internal/domain/care"
	"pet-care-insights/internal/domain/detection"
	"pet-care-insights/internal/platform/metrics"
	"pet-care-insights/internal/router"
)

func TestHTTP_EndToEnd_PetAnalysis(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"

	// 1) Owner registra mascota (edad como número, peso como string)
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":     "Toro",
		"category": "Dogs",
		"breed":    "Bulldog",
		"age":      9,
		"weight":   "25",
	})

	// 2) Owner pide el análisis
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/analysis", ownerID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 analysis, got %d body=%s", st, string(body))
		}
		var rep care.Report
		if err := json.Unmarshal(body, &rep); err != nil {
			t.Fatalf("decode report: %v", err)
		}
		if rep.Scores.HealthRisk != 75 || rep.AIScore != 35 {
			t.Fatalf("unexpected scores %+v aiScore=%d", rep.Scores, rep.AIScore)
		}
		if len(rep.Recommendations) != 2 || rep.Recommendations[1].Priority != care.PriorityCritical {
			t.Fatalf("unexpected recommendations %+v", rep.Recommendations)
		}
	}

	// 3) Otro usuario no puede verla
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/analysis", "intruder", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 for non-owner, got %d", st)
		}
	}

	// 4) Listado del owner
	{
		st, body := doReq(t, ts.URL, "GET", "/pets", ownerID, nil)
		if st != http.StatusOK || !strings.Contains(string(body), petID) {
			t.Fatalf("expected pet in list, got %d body=%s", st, string(body))
		}
	}

	// 5) Análisis de un registro suelto, sin auth
	{
		st, body := doReq(t, ts.URL, "POST", "/care/analysis", "", map[string]any{
			"category": "Reptiles",
			"age":      nil,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", st, string(body))
		}
		if !strings.Contains(string(body), `"restrictions":[]`) {
			t.Fatalf("expected empty restrictions list, body=%s", string(body))
		}
	}
}

func TestHTTP_EndToEnd_Detection(t *testing.T) {
	vision := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"responses":[{"labelAnnotations":[
			{"description":"Dog","score":0.96},
			{"description":"Golden Retriever","score":0.9}
		]}]}`))
	}))
	defer vision.Close()

	tagger := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":{"tags":[{"confidence":70,"tag":{"en":"cat"}}]},"status":{"type":"success"}}`))
	}))
	defer tagger.Close()

	gv, err := googlevision.NewClient(googlevision.Config{Endpoint: vision.URL, APIKey: "k", Timeout: time.Second})
	if err != nil {
		t.Fatalf("googlevision: %v", err)
	}
	im, err := imagga.NewClient(imagga.Config{Endpoint: tagger.URL, APIKey: "k", APISecret: "s", Timeout: time.Second})
	if err != nil {
		t.Fatalf("imagga: %v", err)
	}

	m := metrics.New()
	sel := detection.NewSelector([]detection.Provider{im, gv}, detection.NewHeuristic(nil), detection.SelectorConfig{
		Timeout: 2 * time.Second,
		Metrics: m,
	})
	svc := detection.NewService(sel, detection.ServiceConfig{Metrics: m})

	ts := httptest.NewServer(router.NewRouter(router.Options{Detections: svc, Metrics: m}))
	defer ts.Close()

	st, body := uploadImage(t, ts.URL, pngImage(t, 120, 80))
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}
	var d detection.Detection
	if err := json.Unmarshal(body, &d); err != nil {
		t.Fatalf("decode detection: %v", err)
	}
	if !d.Success || d.Source != googlevision.Name || d.AnimalType != detection.AnimalDog {
		t.Fatalf("unexpected detection %+v", d)
	}
	if d.Enriched == nil || d.Enriched.Name != "Golden Retriever" {
		t.Fatalf("expected enrichment, got %+v", d.Enriched)
	}

	// métricas expuestas
	st, body = doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `petcare_detections_total{fallback="false",source="googlevision"} 1`) {
		t.Fatalf("expected detection metric, got %d", st)
	}
}

func TestHTTP_DefaultDetectionUsesHeuristic(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := uploadImage(t, ts.URL, pngImage(t, 40, 40))
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	var d detection.Detection
	if err := json.Unmarshal(body, &d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !d.Success || !d.Fallback || d.Source != detection.SourceHeuristic {
		t.Fatalf("expected heuristic fallback, got %+v", d)
	}
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	if st, body := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("health: %d %s", st, string(body))
	}
	if st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil); st != http.StatusOK || !strings.Contains(string(body), "/detections") {
		t.Fatalf("swagger: %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/metrics", "", nil); st != http.StatusNotFound {
		t.Fatalf("expected /metrics disabled without registry, got %d", st)
	}
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 creating pet, got %d body=%s", st, string(body))
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode pet: %v", err)
	}
	if out.ID == "" {
		t.Fatalf("pet id empty")
	}
	return out.ID
}

func pngImage(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func uploadImage(t *testing.T, baseURL string, data []byte) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "pet.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	_, _ = fw.Write(data)
	_ = mw.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, baseURL+"/detections", &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	return res.StatusCode, body
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
