package pg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangle-dev/tangle/internal/domain"
)

func TestCreateThread(t *testing.T) {
	author := seedUser(t, "thread_author")

	t.Run("RootThread", func(t *testing.T) {
		start := time.Now()
		id := seedThread(t, author.Id, "root post", nil, nil)
		require.Greater(t, id, int64(0))

		thread, err := storage.GetThread(id)
		require.NoError(t, err)
		assert.Equal(t, "root post", thread.Text)
		assert.Equal(t, author.Id, thread.Author.Id)
		assert.Nil(t, thread.ParentId)
		assert.Nil(t, thread.Community)
		assert.WithinDuration(t, start, thread.CreatedAt, 5*time.Second)
	})

	t.Run("ReplySetsParent", func(t *testing.T) {
		parentId := seedThread(t, author.Id, "parent", nil, nil)
		replyId := seedThread(t, author.Id, "reply", &parentId, nil)

		reply, err := storage.GetThread(replyId)
		require.NoError(t, err)
		require.NotNil(t, reply.ParentId)
		assert.Equal(t, parentId, *reply.ParentId)
	})

	t.Run("InCommunity", func(t *testing.T) {
		community, err := storage.CreateCommunity("ext_comm_threads", "Threads", "")
		require.NoError(t, err)

		id := seedThread(t, author.Id, "community post", nil, &community.Id)
		thread, err := storage.GetThread(id)
		require.NoError(t, err)
		require.NotNil(t, thread.Community)
		assert.Equal(t, community.Id, thread.Community.Id)
	})

	t.Run("MissingParent", func(t *testing.T) {
		missing := domain.ThreadId(-999)
		_, err := storage.CreateThread(domain.ThreadCreationData{
			Author:   author.Id,
			Text:     "orphan",
			ParentId: &missing,
		})
		requireNotFoundError(t, err)
	})

	t.Run("MissingAuthor", func(t *testing.T) {
		_, err := storage.CreateThread(domain.ThreadCreationData{
			Author: -999,
			Text:   "ghost",
		})
		requireNotFoundError(t, err)
	})
}

func TestGetThread(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		_, err := storage.GetThread(-999)
		requireNotFoundError(t, err)
	})

	t.Run("EnrichedWithChildrenAndLikes", func(t *testing.T) {
		author := seedUser(t, "get_enriched_author")
		replier := seedUser(t, "get_enriched_replier")
		liker := seedUser(t, "get_enriched_liker")

		parentId := seedThread(t, author.Id, "enriched parent", nil, nil)
		firstReply := seedThread(t, replier.Id, "first reply", &parentId, nil)
		secondReply := seedThread(t, replier.Id, "second reply", &parentId, nil)
		_, err := storage.ToggleLike(liker.Id, parentId)
		require.NoError(t, err)

		thread, err := storage.GetThread(parentId)
		require.NoError(t, err)

		require.Len(t, thread.Children, 2)
		// Children come back oldest first.
		assert.Equal(t, firstReply, thread.Children[0].Id)
		assert.Equal(t, secondReply, thread.Children[1].Id)
		assert.Equal(t, replier.Id, thread.Children[0].Author.Id)
		assert.Equal(t, replier.Username, thread.Children[0].Author.Username)

		require.Len(t, thread.Likes, 1)
		assert.Equal(t, liker.Id, thread.Likes[0].User)
		assert.True(t, thread.Likes[0].Liked)
	})
}

func TestDeleteThread(t *testing.T) {
	t.Run("CascadesToReplies", func(t *testing.T) {
		author := seedUser(t, "delete_author")
		parentId := seedThread(t, author.Id, "doomed parent", nil, nil)
		replyId := seedThread(t, author.Id, "doomed reply", &parentId, nil)

		require.NoError(t, storage.DeleteThread(parentId))

		_, err := storage.GetThread(parentId)
		requireNotFoundError(t, err)
		_, err = storage.GetThread(replyId)
		requireNotFoundError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		err := storage.DeleteThread(-999)
		requireNotFoundError(t, err)
	})
}

func TestThreadsByAuthor(t *testing.T) {
	t.Run("NewestFirst", func(t *testing.T) {
		author := seedUser(t, "by_author")
		older := seedThread(t, author.Id, "older", nil, nil)
		newer := seedThread(t, author.Id, "newer", nil, nil)

		threads, err := storage.ThreadsByAuthor(author.Id)
		require.NoError(t, err)

		require.Len(t, threads, 2)
		assert.Equal(t, newer, threads[0].Id)
		assert.Equal(t, older, threads[1].Id)
	})

	t.Run("TopLevelOnly", func(t *testing.T) {
		author := seedUser(t, "by_author_replies")
		other := seedUser(t, "by_author_other")

		ownPost := seedThread(t, author.Id, "own post", nil, nil)
		otherPost := seedThread(t, other.Id, "someone else's post", nil, nil)
		ownReply := seedThread(t, author.Id, "own reply elsewhere", &otherPost, nil)

		threads, err := storage.ThreadsByAuthor(author.Id)
		require.NoError(t, err)

		// Replies the author wrote under other posts belong to the reply
		// tree, not the posts tab.
		require.Len(t, threads, 1)
		assert.Equal(t, ownPost, threads[0].Id)
		for _, thread := range threads {
			assert.NotEqual(t, ownReply, thread.Id)
		}
	})

	t.Run("NoThreads", func(t *testing.T) {
		author := seedUser(t, "by_author_empty")
		threads, err := storage.ThreadsByAuthor(author.Id)
		require.NoError(t, err)
		assert.Empty(t, threads)
		assert.NotNil(t, threads)
	})
}
