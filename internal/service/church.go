package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/ipupy/tesoreria/internal/model"
	"github.com/ipupy/tesoreria/internal/repository"
)

type ChurchService struct {
	churchRepo repository.ChurchRepository
}

func NewChurchService(churchRepo repository.ChurchRepository) *ChurchService {
	return &ChurchService{churchRepo: churchRepo}
}

type CreateChurchInput struct {
	Name   string
	City   string
	Pastor string
	Phone  string
}

func (s *ChurchService) Create(in CreateChurchInput) (*model.Church, error) {
	name := strings.TrimSpace(in.Name)
	city := strings.TrimSpace(in.City)
	pastor := strings.TrimSpace(in.Pastor)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if city == "" {
		return nil, fmt.Errorf("%w: city is required", ErrValidation)
	}
	if pastor == "" {
		return nil, fmt.Errorf("%w: pastor is required", ErrValidation)
	}

	church := &model.Church{
		Name:      name,
		City:      city,
		Pastor:    pastor,
		CreatedAt: time.Now().UTC(),
	}
	if phone := strings.TrimSpace(in.Phone); phone != "" {
		church.Phone = &phone
	}

	err := s.churchRepo.Create(church)
	if err != nil {
		return nil, fmt.Errorf("failed to create church: %w", err)
	}

	return church, nil
}

func (s *ChurchService) ByID(id int64) (*model.Church, error) {
	return s.churchRepo.ByID(id)
}

func (s *ChurchService) All() ([]*model.Church, error) {
	return s.churchRepo.All()
}
