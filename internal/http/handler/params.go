package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/common/id"
	"basegraph.app/planboard/internal/http/middleware"
	"basegraph.app/planboard/internal/storage"
)

// userID returns the authenticated caller. Routes without RequireAuth get 0
// and every service call then fails membership resolution.
func userID(c *gin.Context) int64 {
	if user := middleware.GetUser(c.Request.Context()); user != nil {
		return user.ID
	}
	return 0
}

// pathID parses a snowflake path parameter, writing a 400 when it is invalid.
func pathID(c *gin.Context, name string) (int64, bool) {
	v, err := id.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func parseIDs(values []string) ([]int64, error) {
	out := make([]int64, 0, len(values))
	for _, s := range values {
		v, err := id.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// formUpload opens an optional multipart file. The returned closer is never
// nil.
func formUpload(c *gin.Context, field string) (*storage.Upload, io.Closer, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, io.NopCloser(nil), nil
		}
		return nil, io.NopCloser(nil), err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, io.NopCloser(nil), err
	}
	return &storage.Upload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Body:        f,
	}, f, nil
}

func formatID(v int64) string {
	return strconv.FormatInt(v, 10)
}
