package integration_tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vcscsvcscs/carecompanion-go/pkg/api"
	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
	"github.com/vcscsvcscs/carecompanion-go/pkg/view"
	"go.uber.org/zap"
)

// TestClientFlowIntegration walks the full client lifecycle against a stub
// backend: login, profile fetch, vitals logging, risk prediction,
// SOS trigger and logout.
func TestClientFlowIntegration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Stub backend: enforces bearer auth on everything except login
	const token = "integration-token"
	authorized := func(c *gin.Context) bool {
		return c.GetHeader("Authorization") == "Bearer "+token
	}

	router.POST("/auth/login", func(c *gin.Context) {
		if c.PostForm("username") != "+919876543210" || c.PostForm("password") != "secret123" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect phone or password"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"access_token":  token,
			"refresh_token": "refresh",
			"token_type":    "bearer",
			"expires_in":    3600,
		})
	})
	router.GET("/users/me", func(c *gin.Context) {
		if !authorized(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":             "u-1",
			"full_name":      "Ramesh Kumar",
			"phone":          "+919876543210",
			"language":       "te",
			"mobility_level": "self_reliant",
			"is_active":      true,
			"created_at":     "2025-01-15T00:00:00Z",
		})
	})
	router.POST("/vitals", func(c *gin.Context) {
		if !authorized(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":          "v-1",
			"user_id":     "u-1",
			"recorded_at": "2026-08-30T09:00:00Z",
			"source":      "manual",
			"heart_rate":  "72",
		})
	})
	router.POST("/risk/predict", func(c *gin.Context) {
		if !authorized(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":          "r-1",
			"user_id":     "u-1",
			"risk_type":   "fall",
			"score":       0.42,
			"risk_level":  "moderate",
			"model_used":  "gradient_boost",
			"computed_at": "2026-08-30T09:05:00Z",
		})
	})
	router.POST("/emergency/trigger", func(c *gin.Context) {
		if !authorized(c) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":             "sos-1",
			"user_id":        "u-1",
			"trigger_method": "button",
			"status":         "pending",
			"triggered_at":   "2026-08-30T09:10:00Z",
		})
	})

	server := httptest.NewServer(router)
	defer server.Close()

	ctx := context.Background()
	session := api.NewSession()
	client, err := api.New(server.URL, session, zap.NewNop())
	require.NoError(t, err)

	// Unauthenticated requests are rejected by the backend
	_, err = client.Me(ctx)
	require.Error(t, err)

	// Login populates the session
	_, err = client.Login(ctx, "+919876543210", "secret123")
	require.NoError(t, err)
	assert.Equal(t, token, session.Token())

	// Profile fetch and normalization
	user, err := client.Me(ctx)
	require.NoError(t, err)
	profile := view.NormalizeUser(user)
	assert.Equal(t, "Ramesh Kumar", profile.Name)

	// Log a vital and flatten it for display
	reading, err := client.LogVital(ctx, model.VitalCreate{HeartRate: api.Float64(72), Source: "manual"})
	require.NoError(t, err)
	rows := view.VitalRows(reading)
	require.Len(t, rows, 9)
	assert.Equal(t, "72 bpm", rows[0].Display())
	assert.Equal(t, view.Sentinel, rows[1].Display())

	// Predict risk; the view tier comes from the score
	score, err := client.PredictRisk(ctx, model.RiskTypeFall)
	require.NoError(t, err)
	risk := view.NormalizeRisk(*score)
	assert.Equal(t, model.RiskLevelModerate, risk.Level)
	assert.Equal(t, 42, risk.Percent)

	// SOS without a location provider still goes through
	event, err := client.TriggerSOS(ctx, model.TriggerMethodButton, nil)
	require.NoError(t, err)
	assert.Equal(t, "pending", event.Status)
	assert.Nil(t, event.ResolvedAt)

	// Logout clears the credential; the backend rejects the next call
	client.Logout()
	assert.False(t, session.Authenticated())
	_, err = client.Me(ctx)
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Not authenticated", apiErr.Message)
}
