package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completePlanner() (*User, *Planner) {
	name := "Stellar Events"
	bio := "Weddings and corporate events"
	experience := 5
	basePrice := 1200.0

	user := &User{
		IDCardData:           []byte{0x01},
		BirthCertificateData: []byte{0x02},
	}
	planner := &Planner{
		BusinessName: &name,
		Bio:          &bio,
		Experience:   &experience,
		BasePrice:    &basePrice,
	}
	return user, planner
}

func TestIsProfileCompleteAllFieldsPresent(t *testing.T) {
	user, planner := completePlanner()
	assert.True(t, IsProfileComplete(user, planner))
}

func TestIsProfileCompleteMissingDocuments(t *testing.T) {
	user, planner := completePlanner()
	user.IDCardData = nil
	assert.False(t, IsProfileComplete(user, planner))

	user, planner = completePlanner()
	user.BirthCertificateData = nil
	assert.False(t, IsProfileComplete(user, planner))
}

func TestIsProfileCompleteMissingBusinessFields(t *testing.T) {
	user, planner := completePlanner()
	planner.BusinessName = nil
	assert.False(t, IsProfileComplete(user, planner))

	user, planner = completePlanner()
	empty := ""
	planner.Bio = &empty
	assert.False(t, IsProfileComplete(user, planner))

	user, planner = completePlanner()
	planner.Experience = nil
	assert.False(t, IsProfileComplete(user, planner))

	user, planner = completePlanner()
	planner.BasePrice = nil
	assert.False(t, IsProfileComplete(user, planner))
}

func TestIsProfileCompleteZeroExperienceCounts(t *testing.T) {
	// experience of zero years is a present value, not a missing one
	user, planner := completePlanner()
	zero := 0
	planner.Experience = &zero
	assert.True(t, IsProfileComplete(user, planner))
}

func TestIsProfileCompleteNilInputs(t *testing.T) {
	user, planner := completePlanner()
	assert.False(t, IsProfileComplete(nil, planner))
	assert.False(t, IsProfileComplete(user, nil))
}
