package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketStatusTransitions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		from    TicketStatus
		to      TicketStatus
		allowed bool
	}{
		{name: "active to used", from: TicketActive, to: TicketUsed, allowed: true},
		{name: "active to cancelled", from: TicketActive, to: TicketCancelled, allowed: true},
		{name: "active to active", from: TicketActive, to: TicketActive, allowed: false},
		{name: "used is terminal", from: TicketUsed, to: TicketCancelled, allowed: false},
		{name: "used stays used", from: TicketUsed, to: TicketUsed, allowed: false},
		{name: "cancelled is terminal", from: TicketCancelled, to: TicketUsed, allowed: false},
		{name: "cancelled to active", from: TicketCancelled, to: TicketActive, allowed: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestUserHasRole(t *testing.T) {
	t.Parallel()

	user := User{Roles: []string{RoleUser, RoleOrganizer}}

	assert.True(t, user.HasRole(RoleUser))
	assert.True(t, user.HasRole(RoleOrganizer))
	assert.False(t, user.HasRole(RoleAdmin))
}

func TestRolesRoundTrip(t *testing.T) {
	t.Parallel()

	roles := []string{RoleUser, RoleAdmin}
	assert.Equal(t, roles, SplitRoles(JoinRoles(roles)))
	assert.Nil(t, SplitRoles(""))
}

func TestEventSoldTickets(t *testing.T) {
	t.Parallel()

	event := Event{TotalTickets: 10, AvailableTickets: 7}
	assert.Equal(t, 3, event.SoldTickets())
}
