package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func limiterRouter(t *testing.T, max int, allow AllowFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	r := gin.New()
	r.GET("/ping", RateLimit(rdb, max, time.Minute, KeyByIP(), allow), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func doGet(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitRemainingClampsAtZero(t *testing.T) {
	r := limiterRouter(t, 2, nil)

	first := doGet(r, "203.0.113.9:4321")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	second := doGet(r, "203.0.113.9:4321")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	for i := 0; i < 3; i++ {
		w := doGet(r, "203.0.113.9:4321")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimitAllowPrivateIPBypass(t *testing.T) {
	r := limiterRouter(t, 1, AllowPrivateIP())

	for i := 0; i < 5; i++ {
		w := doGet(r, "10.1.2.3:5555")
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// public addresses still hit the limit
	assert.Equal(t, http.StatusOK, doGet(r, "203.0.113.9:4321").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "203.0.113.9:4321").Code)
}

func TestAllowPrivateIP(t *testing.T) {
	cases := []struct {
		name string
		ip   string
		want bool
	}{
		{"loopback", "127.0.0.1", true},
		{"rfc1918", "192.168.1.20", true},
		{"public", "8.8.8.8", false},
		{"garbage", "not-an-ip", false},
	}
	allow := AllowPrivateIP()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set("real_ip", tc.ip)
			assert.Equal(t, tc.want, allow(c))
		})
	}
}
