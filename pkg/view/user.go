package view

import (
	"github.com/vcscsvcscs/carecompanion-go/pkg/model"
)

// Profile is the view-facing user shape. Name aliases the wire's full_name.
type Profile struct {
	ID            string
	Name          string
	Phone         string
	Language      string
	MobilityLevel string
	MemberSince   string
	Active        bool
}

// NormalizeUser maps a wire user onto its view shape. Optional fields that
// are absent display as the sentinel.
func NormalizeUser(user *model.User) Profile {
	if user == nil {
		return Profile{Name: Sentinel, MobilityLevel: Sentinel, MemberSince: Sentinel}
	}

	profile := Profile{
		ID:            user.ID,
		Name:          user.FullName,
		Phone:         user.Phone,
		Language:      user.Language,
		MobilityLevel: user.MobilityLevel,
		MemberSince:   Sentinel,
		Active:        user.IsActive,
	}
	if profile.Language == "" {
		profile.Language = "en"
	}
	if profile.MobilityLevel == "" {
		profile.MobilityLevel = Sentinel
	}
	if !user.CreatedAt.IsZero() {
		profile.MemberSince = user.CreatedAt.Format("2006-01-02")
	}
	return profile
}
