package model

import (
	"time"

	"github.com/google/uuid"
)

// NoReferrerCode is the conventional referral code meaning "not referred".
const NoReferrerCode = "1"

type Signup struct {
	ID           uuid.UUID
	Email        string
	FullName     *string
	ReferralCode *string
	CreatedAt    time.Time
}

// Referred reports whether the signup carries a real referral code,
// i.e. one that is present and not the no-referrer sentinel.
func (s *Signup) Referred() bool {
	return s.ReferralCode != nil && *s.ReferralCode != "" && *s.ReferralCode != NoReferrerCode
}

type SignupStats struct {
	Total    int
	Today    int
	Week     int
	Referred int
}
