package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two learners checking in at the same instant must never collide, and one
// learner must be blocked from a second row on the same calendar day. Both
// depend on the unique index spanning the user and the day, not the raw
// timestamp.
func TestCheckinUniqueIndexSpansUserAndDay(t *testing.T) {
	typ := reflect.TypeOf(Checkin{})

	userField, ok := typ.FieldByName("UserID")
	require.True(t, ok)
	dateField, ok := typ.FieldByName("CheckinDate")
	require.True(t, ok)
	atField, ok := typ.FieldByName("CheckinAt")
	require.True(t, ok)

	assert.Contains(t, userField.Tag.Get("gorm"), "uniqueIndex:idx_user_checkin_date")
	assert.Contains(t, dateField.Tag.Get("gorm"), "uniqueIndex:idx_user_checkin_date")
	assert.NotContains(t, atField.Tag.Get("gorm"), "unique")
}
