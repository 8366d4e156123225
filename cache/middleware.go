package cache

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const Namespace = "gamestore:"

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Responses caches 200 responses of GET requests for ttl, keyed by request
// URI. Store failures are logged and the request is served uncached. A nil
// store disables caching.
//
// A GET still running while a write invalidates the namespace can store the
// body it read before the write; that entry is served until ttl expires.
func Responses(store Store, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		key := Namespace + c.Request.URL.RequestURI()

		cached, ok, err := store.Get(ctx, key)
		if err != nil {
			logrus.Warnf("cache.Responses: get [%s]: %v", key, err)
		} else if ok {
			c.Header("X-Cache", "HIT")
			c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Header("X-Cache", "MISS")
		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}
		if err := store.Set(ctx, key, recorder.body.Bytes(), ttl); err != nil {
			logrus.Warnf("cache.Responses: set [%s]: %v", key, err)
		}
	}
}

// Invalidation drops every cached response after a successful write request.
func Invalidation(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if store == nil {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		if err := store.Invalidate(c.Request.Context(), Namespace); err != nil {
			logrus.Warnf("cache.Invalidation: %v", err)
		}
	}
}
