package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

func TestNormalizeUser_NameAlias(t *testing.T) {
	user := &model.User{
		ID:            "u-1",
		FullName:      "Ramesh Kumar",
		Phone:         "+919876543210",
		Language:      "te",
		MobilityLevel: "assisted",
		IsActive:      true,
		CreatedAt:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	profile := NormalizeUser(user)
	assert.Equal(t, "Ramesh Kumar", profile.Name)
	assert.Equal(t, "+919876543210", profile.Phone)
	assert.Equal(t, "2025-01-15", profile.MemberSince)
	assert.True(t, profile.Active)
}

func TestNormalizeUser_AbsentFieldsUseSentinel(t *testing.T) {
	profile := NormalizeUser(&model.User{ID: "u-1", FullName: "Asha"})
	assert.Equal(t, "en", profile.Language)
	assert.Equal(t, Sentinel, profile.MobilityLevel)
	assert.Equal(t, Sentinel, profile.MemberSince)
}

func TestNormalizeUser_Nil(t *testing.T) {
	profile := NormalizeUser(nil)
	assert.Equal(t, Sentinel, profile.Name)
}
