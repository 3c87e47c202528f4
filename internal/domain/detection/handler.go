package detection

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const DefaultMaxImageBytes = 10 << 20

type detectURLRequest struct {
	ImageURL string `json:"imageUrl" example:"https://example.com/firulais.jpg"`
}

// RegisterRoutes: maxBytes <= 0 usa DefaultMaxImageBytes.
func RegisterRoutes(r chi.Router, svc *Service, maxBytes int64) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	r.Post("/detections", detectHandler(svc, maxBytes))
}

// detectHandler godoc
// @Summary Detectar animal y raza en una imagen
// @Description Consulta en paralelo todos los proveedores configurados y se queda con el de mayor confianza. Si ninguno responde usa el heurístico local (fallback=true). Si nada clasifica responde 200 con success=false.
// @Tags detections
// @Accept mpfd
// @Accept json
// @Produce json
// @Param image formData file false "Imagen (jpeg, png, gif y webp se miden localmente; heic, avif y otros van solo a los proveedores)"
// @Param payload body detectURLRequest false "Referencia http(s):// o s3://bucket/key"
// @Success 200 {object} Detection
// @Failure 400 {string} string "empty image / invalid json"
// @Router /detections [post]
func detectHandler(svc *Service, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

		var (
			d   Detection
			err error
		)
		switch ct {
		case "multipart/form-data":
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes+(1<<20))
			if perr := r.ParseMultipartForm(maxBytes); perr != nil {
				http.Error(w, "invalid multipart form", http.StatusBadRequest)
				return
			}
			f, _, ferr := r.FormFile("image")
			if ferr != nil {
				http.Error(w, "missing image field", http.StatusBadRequest)
				return
			}
			defer f.Close()

			data, rerr := io.ReadAll(io.LimitReader(f, maxBytes+1))
			if rerr != nil || int64(len(data)) > maxBytes {
				http.Error(w, "image too large", http.StatusBadRequest)
				return
			}
			d, err = svc.DetectBytes(r.Context(), data, "")

		default:
			var req detectURLRequest
			if derr := json.NewDecoder(io.LimitReader(r.Body, 1<<16)).Decode(&req); derr != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			ref := strings.TrimSpace(req.ImageURL)
			if ref == "" {
				http.Error(w, "imageUrl is required", http.StatusBadRequest)
				return
			}
			d, err = svc.DetectReference(r.Context(), ref)
		}

		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidImage):
				http.Error(w, "empty image", http.StatusBadRequest)
			case errors.Is(err, ErrUnsupportedReference):
				http.Error(w, "unsupported image reference", http.StatusBadRequest)
			default:
				http.Error(w, "image not retrievable", http.StatusBadRequest)
			}
			return
		}

		writeJSON(w, http.StatusOK, d)
	}
}

// writeJSON duplicado a propósito (ver pets/handler.go).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
