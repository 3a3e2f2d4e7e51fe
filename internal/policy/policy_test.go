package policy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Tests CanMutate
func TestCanMutate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		actorID string
		admin   bool
		ownerID string
		want    bool
	}{
		{name: "owner_may_mutate", actorID: "user1", admin: false, ownerID: "user1", want: true},
		{name: "other_user_denied", actorID: "user2", admin: false, ownerID: "user1", want: false},
		{name: "admin_overrides_ownership", actorID: "admin1", admin: true, ownerID: "user1", want: true},
		{name: "admin_owning_resource", actorID: "admin1", admin: true, ownerID: "admin1", want: true},
		{name: "empty_actor_denied", actorID: "", admin: false, ownerID: "user1", want: false},
		{name: "empty_owner_matches_only_empty_actor", actorID: "", admin: false, ownerID: "", want: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, CanMutate(tc.actorID, tc.admin, tc.ownerID))
		})
	}
}
