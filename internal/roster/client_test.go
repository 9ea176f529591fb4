package roster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gridiron-edge/internal/config"
	"github.com/yourusername/gridiron-edge/internal/models"
)

func testConfig(url string, enabled bool) *config.RosterConfig {
	return &config.RosterConfig{
		URL:             url,
		TimeoutSeconds:  5,
		CacheTTLSeconds: 60,
		Enabled:         enabled,
	}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestSignalsFetchesAndCaches(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "Alabama", r.URL.Query().Get("home"))
		assert.Equal(t, "Auburn", r.URL.Query().Get("away"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"player_efficiency_adj": 2.1,
			"team_efficiency_adj": -0.5,
			"momentum_adj": 1.0,
			"confidence": 0.85,
			"key_insights": ["star RB questionable"]
		}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL, true), quietLogger())
	require.NoError(t, err)

	signals := client.Signals(context.Background(), "Alabama", "Auburn", 2023, 10)
	require.NotNil(t, signals)
	assert.Equal(t, 2.1, signals.PlayerEfficiencyAdj)
	assert.Equal(t, 0.85, signals.Confidence)
	assert.Contains(t, signals.KeyInsights, "star RB questionable")

	// Second lookup is served from cache.
	cached := client.Signals(context.Background(), "Alabama", "Auburn", 2023, 10)
	require.NotNil(t, cached)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSignalsDegradeGracefullyOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL, true), quietLogger())
	require.NoError(t, err)

	signals := client.Signals(context.Background(), "Alabama", "Auburn", 2023, 10)
	assert.Nil(t, signals, "failures must yield nil, never an error")
}

func TestSignalsDisabledClientReturnsNil(t *testing.T) {
	client, err := NewClient(testConfig("http://localhost:1", false), quietLogger())
	require.NoError(t, err)

	assert.Nil(t, client.Signals(context.Background(), "Alabama", "Auburn", 2023, 10))
}

func TestNewClientRequiresConfigAndLogger(t *testing.T) {
	_, err := NewClient(nil, quietLogger())
	assert.Error(t, err)

	_, err = NewClient(testConfig("http://localhost:1", true), nil)
	assert.Error(t, err)
}

func TestSignalsCacheRoundTrip(t *testing.T) {
	cache := NewSignalsCache(time.Hour)
	key := CacheKey{HomeTeam: "Alabama", AwayTeam: "Auburn", Season: 2023, Week: 10}

	assert.Nil(t, cache.Get(key))

	signals := &models.RosterSignals{MomentumAdj: 1.5}
	cache.Set(key, signals)
	assert.Equal(t, signals, cache.Get(key))

	cache.Flush()
	assert.Nil(t, cache.Get(key))
}

func TestCacheKeyString(t *testing.T) {
	key := CacheKey{HomeTeam: "Alabama", AwayTeam: "Auburn", Season: 2023, Week: 10}
	assert.Equal(t, "Alabama:Auburn:2023:10", key.String())
}
