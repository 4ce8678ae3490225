package geocoding

import (
	"context"
	"fmt"
	"math"

	"company-registry/feature/geocoding/models"
)

// ensureMonth bootstraps the counter row for the current month with zero
// counts and the configured limit. The insert ignores duplicates, so
// concurrent callers in the same month cannot create two rows.
func (s *Service) ensureMonth(ctx context.Context, ano, mes int) error {
	verb := "INSERT IGNORE INTO"
	if s.db.Dialector.Name() == "sqlite" {
		verb = "INSERT OR IGNORE INTO"
	}
	return s.db.WithContext(ctx).Exec(
		verb+` controle_api_geocoding
			(ano, mes, total_requisicoes, requisicoes_sucesso, requisicoes_erro, limite_mensal)
			VALUES (?, ?, 0, 0, 0, ?)`,
		ano, mes, s.monthlyLimit,
	).Error
}

func (s *Service) currentCounter(ctx context.Context) (*models.QuotaCounter, error) {
	now := s.now()
	ano, mes := now.Year(), int(now.Month())

	if err := s.ensureMonth(ctx, ano, mes); err != nil {
		return nil, err
	}

	var counter models.QuotaCounter
	err := s.db.WithContext(ctx).
		Where("ano = ? AND mes = ?", ano, mes).
		Take(&counter).Error
	if err != nil {
		return nil, err
	}
	return &counter, nil
}

// QuotaStatus reports the usage counters for the current month, creating
// the month row first if it does not exist yet.
func (s *Service) QuotaStatus(ctx context.Context) (*models.QuotaStatus, error) {
	counter, err := s.currentCounter(ctx)
	if err != nil {
		return nil, err
	}

	percent := 0.0
	if counter.LimiteMensal > 0 {
		percent = math.Round(float64(counter.TotalRequisicoes)/float64(counter.LimiteMensal)*10000) / 100
	}

	return &models.QuotaStatus{
		Ano:                    counter.Ano,
		Mes:                    counter.Mes,
		TotalRequisicoes:       counter.TotalRequisicoes,
		RequisicoesSucesso:     counter.RequisicoesSucesso,
		RequisicoesErro:        counter.RequisicoesErro,
		LimiteMensal:           counter.LimiteMensal,
		RequisicoesDisponiveis: counter.LimiteMensal - counter.TotalRequisicoes,
		PercentualUso:          percent,
		StatusLimite:           counter.LimitState(),
		DataPrimeiroUso:        counter.DataPrimeiroUso,
		DataUltimoUso:          counter.DataUltimoUso,
	}, nil
}

// QuotaCheck reports whether another provider call is allowed this month.
func (s *Service) QuotaCheck(ctx context.Context) (*models.QuotaCheck, error) {
	counter, err := s.currentCounter(ctx)
	if err != nil {
		return nil, err
	}

	available := counter.LimiteMensal - counter.TotalRequisicoes
	allowed := counter.TotalRequisicoes < counter.LimiteMensal

	mensagem := fmt.Sprintf("Você pode usar a API. %d requisições disponíveis.", available)
	if !allowed {
		mensagem = fmt.Sprintf("Limite mensal atingido (%d/%d). Aguarde o próximo mês.",
			counter.TotalRequisicoes, counter.LimiteMensal)
	}

	return &models.QuotaCheck{
		PodeUsar:               allowed,
		RequisicoesDisponiveis: available,
		TotalUsado:             counter.TotalRequisicoes,
		LimiteMensal:           counter.LimiteMensal,
		Mensagem:               mensagem,
	}, nil
}

// RecordUsage increments the month counters by exactly one call. The
// increment is a single UPDATE statement so concurrent records cannot lose
// updates. Recording is never blocked by the limit; callers are expected
// to run QuotaCheck first.
func (s *Service) RecordUsage(ctx context.Context, success bool) error {
	now := s.now()
	ano, mes := now.Year(), int(now.Month())

	if err := s.ensureMonth(ctx, ano, mes); err != nil {
		return err
	}

	sucessoInc, erroInc := 0, 1
	if success {
		sucessoInc, erroInc = 1, 0
	}

	return s.db.WithContext(ctx).Exec(
		`UPDATE controle_api_geocoding
			SET total_requisicoes = total_requisicoes + 1,
			    requisicoes_sucesso = requisicoes_sucesso + ?,
			    requisicoes_erro = requisicoes_erro + ?,
			    data_ultimo_uso = ?,
			    data_primeiro_uso = COALESCE(data_primeiro_uso, ?)
			WHERE ano = ? AND mes = ?`,
		sucessoInc, erroInc, now, now, ano, mes,
	).Error
}
