package setup

import (
	"github.com/tangle-dev/tangle/internal/config"
	"github.com/tangle-dev/tangle/internal/handler"
	"github.com/tangle-dev/tangle/internal/render"
	"github.com/tangle-dev/tangle/internal/service"
	"github.com/tangle-dev/tangle/internal/storage/pg"
)

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	user := service.NewUser(storage)
	thread := service.NewThread(storage, &service.TextValidator{MaxLen: cfg.Public.MaxThreadLen})
	like := service.NewLike(storage)
	community := service.NewCommunity(storage)
	activity := service.NewActivity(storage, &cfg.Public)

	renderer := render.New()

	h := handler.New(user, thread, like, community, activity, renderer)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Config:  cfg,
	}, nil
}
