package detection

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"

	_ "golang.org/x/image/webp"
)

// Image es el handle opaco que reciben los proveedores.
// Data es obligatorio; URI es opcional (algunos proveedores aceptan URL directa).
type Image struct {
	Data        []byte
	URI         string
	ContentType string
	Format      string
	Width       int
	Height      int
	Size        int
}

// NewImage extrae dimensiones sin decodificar los píxeles. Si el formato no
// se puede medir (heic, avif, tiff...) la imagen se devuelve sin Width/Height:
// los proveedores la clasifican igual y el heurístico local la descarta.
func NewImage(data []byte, uri string) (Image, error) {
	if len(data) == 0 {
		return Image{}, fmt.Errorf("%w: empty payload", ErrInvalidImage)
	}
	img := Image{Data: data, URI: uri, Size: len(data)}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		img.ContentType = sniffContentType(data)
		return img, nil
	}
	img.Format = format
	img.ContentType = contentTypeFor(format, data)
	img.Width = cfg.Width
	img.Height = cfg.Height
	return img, nil
}

// HasDimensions indica si NewImage pudo medir la imagen.
func (i Image) HasDimensions() bool {
	return i.Width > 0 && i.Height > 0
}

// AspectRatio = ancho / alto.
func (i Image) AspectRatio() float64 {
	if i.Height == 0 {
		return 0
	}
	return float64(i.Width) / float64(i.Height)
}

// Megapixels del tamaño declarado.
func (i Image) Megapixels() float64 {
	return float64(i.Width) * float64(i.Height) / 1e6
}

func contentTypeFor(format string, data []byte) string {
	switch format {
	case "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	}
	return sniffContentType(data)
}

// heifBrands son las marcas ISO-BMFF (caja ftyp) de fotos de celular.
var heifBrands = map[string]string{
	"heic": "image/heic",
	"heix": "image/heic",
	"heim": "image/heic",
	"heis": "image/heic",
	"hevc": "image/heic",
	"mif1": "image/heif",
	"msf1": "image/heif",
	"avif": "image/avif",
	"avis": "image/avif",
}

// sniffContentType completa http.DetectContentType con HEIF/AVIF y TIFF.
func sniffContentType(data []byte) string {
	if len(data) >= 12 && string(data[4:8]) == "ftyp" {
		if ct, ok := heifBrands[string(data[8:12])]; ok {
			return ct
		}
	}
	if bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*")) {
		return "image/tiff"
	}
	return http.DetectContentType(data)
}
