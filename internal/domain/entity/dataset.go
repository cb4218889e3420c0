package entity

// DateRange delimita, inclusivamente, as datas presentes em um dataset.
type DateRange struct {
	StartDate string `json:"startDate"` // "yyyy-MM-dd"
	EndDate   string `json:"endDate"`   // "yyyy-MM-dd"
}

// IsZero informa se o intervalo ainda não foi preenchido.
func (r DateRange) IsZero() bool {
	return r.StartDate == "" && r.EndDate == ""
}

// HighestConsumer identifica o usuário de maior consumo em um período.
// Empates são resolvidos de forma determinística: vence o menor nome de
// exibição na ordem lexicográfica.
type HighestConsumer struct {
	UserName     string  `json:"userName"`
	TotalUsageMB float64 `json:"totalUsage"`
}

// UnknownConsumer é o valor sentinela usado quando nenhum campeão de consumo
// foi registrado para um período.
var UnknownConsumer = HighestConsumer{UserName: "unknown", TotalUsageMB: 0}

// Dataset é a fonte única de verdade para todas as visões derivadas.
// Imutável após a construção.
type Dataset struct {
	Users                   []UserRecord               `json:"users"`
	DateRange               DateRange                  `json:"dateRange"`
	MonthlyHighestConsumers map[string]HighestConsumer `json:"monthlyHighestConsumers"` // chave "YYYY-MM" gregoriana
}

// NewDataset constrói o dataset a partir dos usuários já resolvidos.
// Quando o exportador não forneceu o mapa de campeões mensais, ele é
// derivado aqui, uma única vez, a partir do histórico completo.
func NewDataset(users []UserRecord, dateRange DateRange, highest map[string]HighestConsumer) *Dataset {
	if highest == nil {
		highest = DeriveMonthlyHighestConsumers(users)
	}
	return &Dataset{
		Users:                   users,
		DateRange:               dateRange,
		MonthlyHighestConsumers: highest,
	}
}

// DeriveMonthlyHighestConsumers varre os totais por usuário e por mês
// gregoriano e retém o máximo de cada mês. Em empate de consumo vence o
// menor nome de exibição.
func DeriveMonthlyHighestConsumers(users []UserRecord) map[string]HighestConsumer {
	type monthUser struct {
		month string
		name  string
	}
	perMonthUser := map[monthUser]float64{}
	for _, u := range users {
		for _, rec := range u.DailyData {
			if len(rec.Day) < 7 {
				continue
			}
			key := monthUser{month: rec.Day[:7], name: u.DisplayName}
			perMonthUser[key] += rec.TotalMB
		}
	}

	highest := map[string]HighestConsumer{}
	for k, usage := range perMonthUser {
		best, ok := highest[k.month]
		switch {
		case !ok, usage > best.TotalUsageMB:
			highest[k.month] = HighestConsumer{UserName: k.name, TotalUsageMB: usage}
		case usage == best.TotalUsageMB && k.name < best.UserName:
			highest[k.month] = HighestConsumer{UserName: k.name, TotalUsageMB: usage}
		}
	}
	return highest
}

// Empty informa se nenhum usuário restou no dataset. Um dataset vazio é um
// estado válido ("sem dados no intervalo"), distinto de falha de carga.
func (d *Dataset) Empty() bool {
	return d == nil || len(d.Users) == 0
}

// UserByName localiza um usuário pelo nome de exibição.
func (d *Dataset) UserByName(displayName string) (UserRecord, bool) {
	if d == nil {
		return UserRecord{}, false
	}
	for _, u := range d.Users {
		if u.DisplayName == displayName {
			return u, true
		}
	}
	return UserRecord{}, false
}

// HighestConsumerFor devolve o campeão de consumo do mês gregoriano
// ("YYYY-MM"), ou o sentinela UnknownConsumer quando ausente.
func (d *Dataset) HighestConsumerFor(monthKey string) HighestConsumer {
	if d == nil {
		return UnknownConsumer
	}
	if hc, ok := d.MonthlyHighestConsumers[monthKey]; ok {
		return hc
	}
	return UnknownConsumer
}
