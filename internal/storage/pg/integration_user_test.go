package pg

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-dev/tangle/internal/domain"
)

func TestUpsertUser(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		user, err := storage.UpsertUser(domain.UserUpdate{
			ExtId:    "ext_upsert_create",
			Username: "upsert_create",
			Name:     "First Last",
			Bio:      "hello",
		})
		require.NoError(t, err)

		assert.Greater(t, user.Id, int64(0))
		assert.Equal(t, "ext_upsert_create", user.ExtId)
		assert.Equal(t, "upsert_create", user.Username)
		assert.True(t, user.Onboarded, "upserting should mark the user onboarded")
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("UpdateKeepsId", func(t *testing.T) {
		first, err := storage.UpsertUser(domain.UserUpdate{ExtId: "ext_upsert_update", Username: "upsert_update"})
		require.NoError(t, err)

		second, err := storage.UpsertUser(domain.UserUpdate{
			ExtId:    "ext_upsert_update",
			Username: "upsert_update",
			Bio:      "changed",
		})
		require.NoError(t, err)

		assert.Equal(t, first.Id, second.Id, "upsert by ext id must not create a second row")
		assert.Equal(t, "changed", second.Bio)
	})

	t.Run("UsernameConflict", func(t *testing.T) {
		_, err := storage.UpsertUser(domain.UserUpdate{ExtId: "ext_conflict_a", Username: "taken_name"})
		require.NoError(t, err)

		_, err = storage.UpsertUser(domain.UserUpdate{ExtId: "ext_conflict_b", Username: "taken_name"})
		requireStatusError(t, err, http.StatusConflict)
	})
}

func TestGetUserByExtId(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		_, err := storage.GetUserByExtId("ext_does_not_exist")
		requireNotFoundError(t, err)
	})

	t.Run("WithCommunities", func(t *testing.T) {
		user := seedUser(t, "get_with_comm")
		community, err := storage.CreateCommunity("ext_comm_membership", "Membership", "")
		require.NoError(t, err)
		require.NoError(t, storage.AddCommunityMember(community.Id, user.Id))

		fetched, err := storage.GetUserByExtId(user.ExtId)
		require.NoError(t, err)

		assert.Equal(t, user.Id, fetched.Id)
		require.Len(t, fetched.Communities, 1)
		assert.Equal(t, community.Id, fetched.Communities[0].Id)
		assert.Equal(t, "Membership", fetched.Communities[0].Name)
	})
}

func TestAddCommunityMember(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		user := seedUser(t, "member_twice")
		community, err := storage.CreateCommunity("ext_comm_twice", "Twice", "")
		require.NoError(t, err)

		require.NoError(t, storage.AddCommunityMember(community.Id, user.Id))
		require.NoError(t, storage.AddCommunityMember(community.Id, user.Id))

		fetched, err := storage.GetUserByExtId(user.ExtId)
		require.NoError(t, err)
		assert.Len(t, fetched.Communities, 1)
	})

	t.Run("MissingCommunity", func(t *testing.T) {
		user := seedUser(t, "member_missing")
		err := storage.AddCommunityMember(-999, user.Id)
		requireNotFoundError(t, err)
	})
}

func TestCommunities(t *testing.T) {
	t.Run("CreateAndGet", func(t *testing.T) {
		created, err := storage.CreateCommunity("ext_comm_roundtrip", "Roundtrip", "img.png")
		require.NoError(t, err)

		fetched, err := storage.GetCommunity("ext_comm_roundtrip")
		require.NoError(t, err)
		assert.Equal(t, created.Id, fetched.Id)
		assert.Equal(t, "Roundtrip", fetched.Name)
	})

	t.Run("DuplicateExtId", func(t *testing.T) {
		_, err := storage.CreateCommunity("ext_comm_dup", "Dup", "")
		require.NoError(t, err)

		_, err = storage.CreateCommunity("ext_comm_dup", "Dup Again", "")
		requireStatusError(t, err, http.StatusConflict)
	})

	t.Run("GetNotFound", func(t *testing.T) {
		_, err := storage.GetCommunity("ext_comm_nope")
		requireNotFoundError(t, err)
	})
}
