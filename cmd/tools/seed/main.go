// Seeds the database with demo users, threads, replies and likes.
// Intended for local development against an empty schema.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/tangle-dev/tangle/internal/config"
	"github.com/tangle-dev/tangle/internal/domain"
	"github.com/tangle-dev/tangle/internal/storage/pg"
)

func main() {
	var (
		configFolder string
		userCount    int
		threadCount  int
	)
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.IntVar(&userCount, "users", 5, "number of demo users")
	flag.IntVar(&threadCount, "threads", 20, "number of top-level threads")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	storage, err := pg.New(cfg)
	if err != nil {
		slog.Error("failed to connect to db", "err", err)
		os.Exit(1)
	}
	defer storage.Cleanup()

	users := lo.Times(userCount, func(i int) domain.User {
		user, err := storage.UpsertUser(domain.UserUpdate{
			ExtId:    uuid.NewString(),
			Username: fmt.Sprintf("demo_user_%d", i),
			Name:     fmt.Sprintf("Demo User %d", i),
			Bio:      "seeded account",
			Image:    fmt.Sprintf("https://placekitten.com/64/%d", 64+i),
		})
		if err != nil {
			slog.Error("failed to seed user", "err", err)
			os.Exit(1)
		}
		return user
	})

	community, err := storage.CreateCommunity(uuid.NewString(), "Demo Community", "")
	if err != nil {
		slog.Error("failed to seed community", "err", err)
		os.Exit(1)
	}
	for _, user := range users {
		if err := storage.AddCommunityMember(community.Id, user.Id); err != nil {
			slog.Error("failed to seed membership", "err", err)
			os.Exit(1)
		}
	}

	threadIds := lo.Times(threadCount, func(i int) domain.ThreadId {
		author := users[rand.Intn(len(users))]
		creation := domain.ThreadCreationData{
			Author: author.Id,
			Text:   fmt.Sprintf("Seeded thread #%d by %s", i, author.Username),
		}
		if i%3 == 0 {
			creation.Community = &community.Id
		}
		id, err := storage.CreateThread(creation)
		if err != nil {
			slog.Error("failed to seed thread", "err", err)
			os.Exit(1)
		}
		return id
	})

	// A couple of replies and likes per thread so the activity feed has
	// something to show.
	for _, threadId := range threadIds {
		for range 2 {
			replier := users[rand.Intn(len(users))]
			parentId := threadId
			if _, err := storage.CreateThread(domain.ThreadCreationData{
				Author:   replier.Id,
				Text:     fmt.Sprintf("Seeded reply from %s", replier.Username),
				ParentId: &parentId,
			}); err != nil {
				slog.Error("failed to seed reply", "err", err)
				os.Exit(1)
			}
		}
		liker := users[rand.Intn(len(users))]
		if _, err := storage.ToggleLike(liker.Id, threadId); err != nil {
			slog.Error("failed to seed like", "err", err)
			os.Exit(1)
		}
	}

	slog.Info("seeding done", "users", len(users), "threads", len(threadIds))
}
