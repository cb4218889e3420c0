package payload

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/samber/lo"

	"github.com/diillson/netusage-dashboard-go/internal/domain/entity"
	"github.com/diillson/netusage-dashboard-go/internal/domain/repository"
	"github.com/diillson/netusage-dashboard-go/internal/shared/types"
)

// Forma exata do payload produzido pelo exportador externo. Os campos são
// validados na construção; valores em MB, arredondados a 2 casas pelo
// produtor.
type dailyRecordPayload struct {
	UserID     string  `json:"userId" validate:"required"`
	Name       string  `json:"name"`
	Day        string  `json:"day" validate:"required,datetime=2006-01-02"`
	Download   float64 `json:"download" validate:"gte=0"`
	Upload     float64 `json:"upload" validate:"gte=0"`
	TotalUsage float64 `json:"totalUsage" validate:"gte=0"`
}

type summaryPayload struct {
	UserID        string  `json:"userId"`
	TotalDownload float64 `json:"totalDownload" validate:"gte=0"`
	TotalUpload   float64 `json:"totalUpload" validate:"gte=0"`
	TotalUsage    float64 `json:"totalUsage" validate:"gte=0"`
}

type userPayload struct {
	UserID    string               `json:"userId" validate:"required"`
	Name      string               `json:"name"`
	DailyData []dailyRecordPayload `json:"dailyData" validate:"dive"`
	Summary   summaryPayload       `json:"summary"`
}

type highestConsumerPayload struct {
	UserName   string  `json:"userName"`
	TotalUsage float64 `json:"totalUsage" validate:"gte=0"`
}

type dateRangePayload struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

type datasetPayload struct {
	Users                   []userPayload                     `json:"users" validate:"dive"`
	DateRange               dateRangePayload                  `json:"dateRange"`
	MonthlyHighestConsumers map[string]highestConsumerPayload `json:"monthlyHighestConsumers" validate:"dive"`
}

// PayloadRepositoryImpl implementa o DatasetRepository sobre o arquivo JSON
// exportado.
type PayloadRepositoryImpl struct {
	validate *validator.Validate
}

// NewPayloadRepository cria uma nova implementação do DatasetRepository.
func NewPayloadRepository() repository.DatasetRepository {
	return &PayloadRepositoryImpl{validate: validator.New()}
}

// LoadDataset lê, valida e resolve o payload para o dataset imutável.
// Qualquer falha aqui é o estado "not ready" — nunca confundido com um
// intervalo sem dados.
func (r *PayloadRepositoryImpl) LoadDataset(path string, cfg *types.Config) (*entity.Dataset, error) {
	if path == "" {
		return nil, types.ErrDatasetNotReady
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading payload: %v", types.ErrDatasetNotReady, err)
	}

	var p datasetPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: parsing payload: %v", types.ErrDatasetNotReady, err)
	}
	if err := r.validate.Struct(&p); err != nil {
		return nil, fmt.Errorf("%w: validating payload: %v", types.ErrDatasetNotReady, err)
	}

	if cfg == nil {
		cfg = &types.Config{}
	}
	excluded := map[string]bool{}
	for _, id := range cfg.ExcludedUsers {
		excluded[id] = true
	}

	users := make([]entity.UserRecord, 0, len(p.Users))
	seenNames := map[string]bool{}
	for _, u := range p.Users {
		displayName := resolveDisplayName(cfg.UserNames, u.UserID, u.Name)
		if excluded[u.UserID] || excluded[displayName] {
			continue
		}
		// Unicidade por nome de exibição: o primeiro encontrado vence
		// (o exportador envia usuários ordenados por nome).
		if seenNames[displayName] {
			continue
		}
		seenNames[displayName] = true

		daily := lo.Map(u.DailyData, func(d dailyRecordPayload, _ int) entity.DailyRecord {
			return entity.DailyRecord{
				UserID:      d.UserID,
				DisplayName: displayName,
				Day:         d.Day,
				DownloadMB:  d.Download,
				UploadMB:    d.Upload,
				TotalMB:     d.TotalUsage,
			}
		})

		users = append(users, entity.UserRecord{
			UserID:      u.UserID,
			DisplayName: displayName,
			DailyData:   daily,
			Summary: entity.Totals{
				TotalDownloadMB: u.Summary.TotalDownload,
				TotalUploadMB:   u.Summary.TotalUpload,
				TotalUsageMB:    u.Summary.TotalUsage,
			},
		})
	}

	var highest map[string]entity.HighestConsumer
	if p.MonthlyHighestConsumers != nil {
		highest = map[string]entity.HighestConsumer{}
		for monthKey, hc := range p.MonthlyHighestConsumers {
			highest[monthKey] = entity.HighestConsumer{
				UserName:     hc.UserName,
				TotalUsageMB: hc.TotalUsage,
			}
		}
	}

	rng := entity.DateRange{StartDate: p.DateRange.StartDate, EndDate: p.DateRange.EndDate}
	return entity.NewDataset(users, rng, highest), nil
}

// resolveDisplayName aplica o mapeamento externo id->nome, com o nome do
// payload e por fim o próprio id como fallback de identidade.
func resolveDisplayName(mapping map[string]string, userID, payloadName string) string {
	if name, ok := mapping[userID]; ok && name != "" {
		return name
	}
	if payloadName != "" {
		return payloadName
	}
	return userID
}
