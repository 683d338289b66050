package service

import (
	"context"
	"sort"

	"fitbite-be/internal/config"
	"fitbite-be/internal/dto"
)

type IDiscountService interface {
	GetCodes(ctx context.Context) ([]dto.DiscountCodeResponse, error)
}

type discountService struct {
	cfg config.DiscountConfig
}

func NewDiscountService(cfg config.DiscountConfig) IDiscountService {
	return &discountService{cfg: cfg}
}

// GetCodes lists the configured generic codes; the birthday code is not
// advertised here.
func (s *discountService) GetCodes(ctx context.Context) ([]dto.DiscountCodeResponse, error) {
	codes := make([]dto.DiscountCodeResponse, 0, len(s.cfg.GenericCodes))
	for code, percent := range s.cfg.GenericCodes {
		codes = append(codes, dto.DiscountCodeResponse{Code: code, Percent: percent})
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i].Code < codes[j].Code })
	return codes, nil
}
