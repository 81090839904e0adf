package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeSource(id string, kind EntitlementKind) *EntitlementSource {
	return &EntitlementSource{
		ID:               id,
		MemberID:         "m1",
		Kind:             kind,
		CreditsRemaining: 5,
		StartsAt:         time.Now().Add(-24 * time.Hour),
		EndsAt:           time.Now().Add(24 * time.Hour),
	}
}

func TestEntitlementSource_UsableFor_Unrestricted(t *testing.T) {
	src := activeSource("s1", EntitlementKindUnlimited)

	assert.True(t, src.UsableFor("yoga", "downtown", time.Now()))
}

func TestEntitlementSource_UsableFor_OutsideWindow(t *testing.T) {
	src := activeSource("s1", EntitlementKindUnlimited)
	src.EndsAt = time.Now().Add(-time.Hour)

	assert.False(t, src.UsableFor("yoga", "downtown", time.Now()))
}

func TestEntitlementSource_UsableFor_DrainedCreditPack(t *testing.T) {
	src := activeSource("s1", EntitlementKindCreditPack)
	src.CreditsRemaining = 0

	// окно действия ещё открыто, но кредиты кончились
	assert.False(t, src.UsableFor("yoga", "downtown", time.Now()))
}

func TestEntitlementSource_UsableFor_LocationRestriction(t *testing.T) {
	src := activeSource("s1", EntitlementKindUnlimited)
	src.LocationIDs = []string{"uptown"}

	assert.False(t, src.UsableFor("yoga", "downtown", time.Now()))
	assert.True(t, src.UsableFor("yoga", "uptown", time.Now()))
}

func TestEntitlementSource_UsableFor_ClassTypeRestriction(t *testing.T) {
	src := activeSource("s1", EntitlementKindCreditPack)
	src.ClassTypeIDs = []string{"pilates"}

	assert.False(t, src.UsableFor("yoga", "downtown", time.Now()))
	assert.True(t, src.UsableFor("pilates", "downtown", time.Now()))
}

func TestResolveSource_PrefersExpiringSoonest(t *testing.T) {
	later := activeSource("later", EntitlementKindUnlimited)
	later.EndsAt = time.Now().Add(30 * 24 * time.Hour)
	sooner := activeSource("sooner", EntitlementKindCreditPack)
	sooner.EndsAt = time.Now().Add(3 * 24 * time.Hour)

	got := ResolveSource([]*EntitlementSource{later, sooner}, "yoga", "downtown", time.Now())

	require.NotNil(t, got)
	assert.Equal(t, "sooner", got.ID)
}

func TestResolveSource_SkipsUnusable(t *testing.T) {
	drained := activeSource("drained", EntitlementKindCreditPack)
	drained.CreditsRemaining = 0
	drained.EndsAt = time.Now().Add(time.Hour)
	usable := activeSource("usable", EntitlementKindUnlimited)

	got := ResolveSource([]*EntitlementSource{drained, usable}, "yoga", "downtown", time.Now())

	require.NotNil(t, got)
	assert.Equal(t, "usable", got.ID)
}

func TestResolveSource_NoneUsable(t *testing.T) {
	drained := activeSource("drained", EntitlementKindCreditPack)
	drained.CreditsRemaining = 0

	got := ResolveSource([]*EntitlementSource{drained}, "yoga", "downtown", time.Now())

	assert.Nil(t, got)
}
