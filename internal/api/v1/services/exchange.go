package services

import (
	"context"

	"cinevoice/internal/api/v1/dto"
	"cinevoice/internal/app/repository"
)

type exchangeService struct {
	dao repository.ExchangeDAO
}

// NewExchangeService exposes recorded exchange history
func NewExchangeService(dao repository.ExchangeDAO) ExchangeService {
	return &exchangeService{dao: dao}
}

func (s *exchangeService) List(_ context.Context, query dto.ListExchangesQuery) (*dto.PaginatedExchangesResponse, error) {
	exchanges, err := s.dao.List(query.Limit, query.Offset)
	if err != nil {
		return nil, err
	}

	total, err := s.dao.Count()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ExchangeResponse, 0, len(exchanges))
	for _, e := range exchanges {
		responses = append(responses, dto.FromModel(e))
	}

	return &dto.PaginatedExchangesResponse{
		Exchanges: responses,
		Total:     total,
		Limit:     query.Limit,
		Offset:    query.Offset,
	}, nil
}
