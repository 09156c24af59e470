package repo

import (
	"github.com/vlrbet/vlrbet/internal/pg"
	accountrepo "github.com/vlrbet/vlrbet/internal/repo/account-repo"
	betrepo "github.com/vlrbet/vlrbet/internal/repo/bet-repo"
	"github.com/vlrbet/vlrbet/internal/service/betservice"
	"github.com/vlrbet/vlrbet/internal/service/ledgerservice"
)

type Repositories struct {
	AccountRepo ledgerservice.AccountRepo
	BetRepo     betservice.BetRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	accountRepo := accountrepo.New(conn, txManager)
	betRepo := betrepo.New(conn, txManager)

	return &Repositories{
		AccountRepo: accountRepo,
		BetRepo:     betRepo,
	}
}
