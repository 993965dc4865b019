package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient_AssignsUniqueIDs(t *testing.T) {
	a := NewClient("x", 1)
	b := NewClient("x", 1)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewClient_StampsTypeAndCreatedAt(t *testing.T) {
	c := NewClient("vip", 42)
	assert.Equal(t, "vip", c.Type)
	assert.Equal(t, 42.0, c.CreatedAt)
	assert.Equal(t, ClientLedger{}, c.Ledger)
}
