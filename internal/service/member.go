package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/service/ports"
)

type MemberService struct {
	repo ports.MemberRepo
}

func NewMemberService(repo ports.MemberRepo) *MemberService {
	return &MemberService{repo: repo}
}

func (s *MemberService) Create(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	member := &domain.Member{
		ID:             uuid.New().String(),
		Name:           input.Name,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	return member, nil
}

func (s *MemberService) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MemberService) List(ctx context.Context) ([]*domain.Member, error) {
	return s.repo.List(ctx)
}
