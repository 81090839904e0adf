package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/service/ports"
)

type EntitlementService struct {
	repo       ports.EntitlementRepo
	memberRepo ports.MemberRepo
}

func NewEntitlementService(repo ports.EntitlementRepo, memberRepo ports.MemberRepo) *EntitlementService {
	return &EntitlementService{
		repo:       repo,
		memberRepo: memberRepo,
	}
}

func (s *EntitlementService) Create(ctx context.Context, memberID string, input domain.CreateEntitlementInput) (*domain.EntitlementSource, error) {
	if input.Kind != domain.EntitlementKindUnlimited && input.Kind != domain.EntitlementKindCreditPack {
		return nil, fmt.Errorf("%w: unknown entitlement kind %q", domain.ErrValidation, input.Kind)
	}
	if input.Kind == domain.EntitlementKindCreditPack && input.Credits <= 0 {
		return nil, fmt.Errorf("%w: credit pack must have positive credits", domain.ErrValidation)
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, fmt.Errorf("%w: ends_at must be after starts_at", domain.ErrValidation)
	}

	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	source := &domain.EntitlementSource{
		ID:           uuid.New().String(),
		MemberID:     memberID,
		Kind:         input.Kind,
		LocationIDs:  input.LocationIDs,
		ClassTypeIDs: input.ClassTypeIDs,
		StartsAt:     input.StartsAt,
		EndsAt:       input.EndsAt,
		CreatedAt:    time.Now().UTC(),
	}
	if input.Kind == domain.EntitlementKindCreditPack {
		source.CreditsRemaining = input.Credits
	}

	if err := s.repo.Create(ctx, source); err != nil {
		return nil, fmt.Errorf("create entitlement source: %w", err)
	}

	return source, nil
}

func (s *EntitlementService) ListByMember(ctx context.Context, memberID string) ([]*domain.EntitlementSource, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	return s.repo.ListByMember(ctx, memberID)
}
