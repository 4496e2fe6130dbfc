package repo

import (
	"github.com/GlebRadaev/authordash/internal/pg"
	journalrepo "github.com/GlebRadaev/authordash/internal/repo/journal-repo"
	"github.com/GlebRadaev/authordash/internal/service/payoutservice"
)

type Repositories struct {
	Journal payoutservice.Journal
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Journal: journalrepo.New(conn, txManager),
	}
}

// NewInMemory is used when no database is configured.
func NewInMemory() *Repositories {
	return &Repositories{
		Journal: journalrepo.NewMemory(),
	}
}
