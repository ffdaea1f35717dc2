package response

import (
	"bytes"
	"errors"
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func captureServerError(t *testing.T, err error) (string, string) {
	t.Helper()

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	ServerError(c, err)
	return recorder.Body.String(), logs.String()
}

func TestServerErrorInRelease(t *testing.T) {
	SetMode("release")
	defer SetMode("debug")

	body, logs := captureServerError(t, errors.New("boom"))

	// 生产模式下详情不进响应体，但必须进服务端日志
	assert.NotContains(t, body, "boom")
	assert.Contains(t, body, "服务器错误")
	assert.Contains(t, logs, "boom")
}

func TestServerErrorInDebug(t *testing.T) {
	SetMode("debug")

	body, logs := captureServerError(t, errors.New("boom"))

	assert.Contains(t, body, "boom")
	assert.Contains(t, logs, "boom")
}

func TestServerErrorNilError(t *testing.T) {
	SetMode("debug")

	body, logs := captureServerError(t, nil)

	assert.Contains(t, body, "服务器错误")
	assert.Empty(t, logs)
}
