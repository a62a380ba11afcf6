package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDescribeClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("User-Agent", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Version/17.0 Mobile/15E148 Safari/604.1")
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	info := DescribeClient(c)

	assert.Equal(t, "203.0.113.7", info.IP)
	assert.Equal(t, "mobile", info.Device)
	assert.Equal(t, "Safari", info.Browser)
	assert.Equal(t, "iOS", info.OS)
}

func TestDescribeClient_NilContext(t *testing.T) {
	assert.Equal(t, ClientInfo{}, DescribeClient(nil))
}
