package orders

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The idempotency key is scoped per user: two customers may reuse the
// same key, so the unique index must span (user_id, idempotency_key).
func TestIdempotencyKeyUniquePerUser(t *testing.T) {
	typ := reflect.TypeOf(Order{})

	user, ok := typ.FieldByName("UserID")
	require.True(t, ok)
	key, ok := typ.FieldByName("IdempotencyKey")
	require.True(t, ok)

	assert.Contains(t, user.Tag.Get("gorm"), "uniqueIndex:ux_orders_user_idem,priority:1")
	assert.Contains(t, key.Tag.Get("gorm"), "uniqueIndex:ux_orders_user_idem,priority:2")
}
