package repository

import (
	"github.com/diillson/netusage-dashboard-go/internal/domain/entity"
	"github.com/diillson/netusage-dashboard-go/internal/shared/types"
)

// DatasetRepository define a interface para carregar o payload exportado.
type DatasetRepository interface {
	// LoadDataset lê e valida o payload JSON, resolve nomes de exibição via
	// config (identidade quando ausente), aplica a lista de exclusão e
	// devolve o dataset imutável. Payload ausente ou malformado resulta em
	// types.ErrDatasetNotReady (embrulhado com a causa).
	LoadDataset(path string, cfg *types.Config) (*entity.Dataset, error)
}
