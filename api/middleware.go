package api

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows browser clients from origin to call the API.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// brotliWriter sends the response body through a brotli encoder.
type brotliWriter struct {
	gin.ResponseWriter
	enc *brotli.Writer
}

func (w *brotliWriter) Write(b []byte) (int, error) {
	return w.enc.Write(b)
}

func (w *brotliWriter) WriteString(s string) (int, error) {
	return w.enc.Write([]byte(s))
}

// BrotliMiddleware compresses responses for clients that send
// "Accept-Encoding: br". Search trees of large maps shrink well.
func BrotliMiddleware(level int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !acceptsBrotli(c.GetHeader("Accept-Encoding")) {
			c.Next()
			return
		}

		enc := brotli.NewWriterLevel(c.Writer, level)
		c.Header("Content-Encoding", "br")
		c.Header("Vary", "Accept-Encoding")
		c.Writer.Header().Del("Content-Length")
		c.Writer = &brotliWriter{ResponseWriter: c.Writer, enc: enc}
		defer enc.Close()

		c.Next()
	}
}

func acceptsBrotli(header string) bool {
	for _, part := range strings.Split(header, ",") {
		enc, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(enc, "br") {
			return true
		}
	}
	return false
}
