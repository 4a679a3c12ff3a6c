package server

import (
	"crypto/subtle"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"strconv"

	_ "github.com/gen2brain/avif"
	_ "golang.org/x/image/webp"

	"github.com/gin-gonic/gin"
	"github.com/kaelvn/cifarduel/classify"
	"github.com/kaelvn/cifarduel/config"
)

var (
	errUnauthorized = errors.New("unauthorized")
)

func authenticate(c *gin.Context) error {
	auth := c.GetHeader("Authorization")

	expectedToken := config.C().Token
	if expectedToken == "" {
		return nil
	}
	providedToken := ""
	if len(auth) > 7 && auth[:7] == "Bearer " {
		providedToken = auth[7:]
	}
	if subtle.ConstantTimeCompare([]byte(providedToken), []byte(expectedToken)) != 1 {
		return errUnauthorized
	}

	return nil
}

func topK(c *gin.Context) int {
	k := config.C().TopK
	if v := c.Query("k"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 && n <= classify.NumClasses {
			k = n
		}
	}
	return k
}

func decodeUpload(c *gin.Context) ([]byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(400, gin.H{"error": "no file uploaded"})
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(400, gin.H{"error": "cannot open uploaded file"})
		return nil, false
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		c.JSON(400, gin.H{"error": "cannot decode image"})
		return nil, false
	}

	return classify.PixelBuffer(img), true
}

func ClassifyHandler(c *gin.Context) {
	if err := authenticate(c); err != nil {
		c.JSON(401, gin.H{"error": "authentication failed"})
		return
	}

	pixels, ok := decodeUpload(c)
	if !ok {
		return
	}

	results, err := pipeline.Classify(pixels, topK(c), baseline)
	if err != nil {
		slog.Error("Classification failed", slog.String("error", err.Error()))
		c.JSON(500, gin.H{"error": "classification failed"})
		return
	}

	c.JSON(200, results[0])
}

func CompareHandler(c *gin.Context) {
	if err := authenticate(c); err != nil {
		c.JSON(401, gin.H{"error": "authentication failed"})
		return
	}
	if quant == nil {
		c.JSON(503, gin.H{"error": "quantized model not loaded, comparison unavailable"})
		return
	}

	pixels, ok := decodeUpload(c)
	if !ok {
		return
	}

	result, err := pipeline.Compare(pixels, topK(c), baseline, quant)
	if err != nil {
		var infErr *classify.InferenceError
		if errors.As(err, &infErr) {
			slog.Error("Comparison failed", slog.String("model", infErr.Model), slog.String("error", err.Error()))
		} else {
			slog.Error("Comparison failed", slog.String("error", err.Error()))
		}
		c.JSON(500, gin.H{"error": "comparison failed"})
		return
	}

	c.JSON(200, result)
}

func HealthHandler(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy", "dual_model": quant != nil})
}
