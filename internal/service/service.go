package service

import (
	"github.com/vlrbet/vlrbet/internal/config"
	"github.com/vlrbet/vlrbet/internal/feed"
	"github.com/vlrbet/vlrbet/internal/pg"
	"github.com/vlrbet/vlrbet/internal/repo"
	betservice "github.com/vlrbet/vlrbet/internal/service/betservice"
	ledgerservice "github.com/vlrbet/vlrbet/internal/service/ledgerservice"
	wagerservice "github.com/vlrbet/vlrbet/internal/service/wagerservice"
)

type Services struct {
	LedgerService *ledgerservice.Service
	BetService    *betservice.Service
	WagerService  *wagerservice.Service
}

func New(cfg *config.Config, repo *repo.Repositories, txManager pg.TXManager, feedClient *feed.Client) *Services {
	ledgerService := ledgerservice.New(repo.AccountRepo, txManager)
	betService := betservice.New(repo.BetRepo, ledgerService, txManager)
	wagerService := wagerservice.New(ledgerService, betService, feedClient, txManager, cfg.WagerTimeout)

	return &Services{
		LedgerService: ledgerService,
		BetService:    betService,
		WagerService:  wagerService,
	}
}
