package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/checkout-service/internal/entities"
	"github.com/SergeyBogomolovv/checkout-service/pkg/utils"
)

type ProfileRepo interface {
	GetProfile(ctx context.Context, userID string) (entities.Profile, error)
	GetBusinessCustomer(ctx context.Context, id string) (entities.BusinessCustomer, error)
}

type identityResolver struct {
	logger *slog.Logger
	repo   ProfileRepo
	retry  utils.RetryConfig
}

func NewIdentityResolver(logger *slog.Logger, repo ProfileRepo) *identityResolver {
	return &identityResolver{
		logger: logger.With(slog.String("service", "identity")),
		repo:   repo,
		retry:  utils.DefaultRetry,
	}
}

// Resolve reads the shopper's profile and decides NET-terms eligibility.
// An authenticated session without a readable profile is a precondition
// failure reported as ErrProfileUnavailable.
func (r *identityResolver) Resolve(ctx context.Context, session entities.Session) (entities.Identity, error) {
	if !session.Authenticated() {
		return entities.Identity{}, nil
	}

	var profile entities.Profile
	err := utils.Retry(ctx, r.retry, func() error {
		var err error
		profile, err = r.repo.GetProfile(ctx, session.UserID)
		return err
	}, entities.ErrProfileNotFound)
	if err != nil {
		r.logger.Error("failed to load profile", slog.String("user_id", session.UserID), slog.Any("error", err))
		return entities.Identity{}, fmt.Errorf("%w: %w", entities.ErrProfileUnavailable, err)
	}

	identity := entities.Identity{
		Authenticated:  true,
		UserID:         profile.UserID,
		Email:          profile.Email,
		NetTermsStatus: profile.TermsReviewStatus,
	}

	if profile.CustomerID == "" {
		return identity, nil
	}

	var customer entities.BusinessCustomer
	err = utils.Retry(ctx, r.retry, func() error {
		var err error
		customer, err = r.repo.GetBusinessCustomer(ctx, profile.CustomerID)
		return err
	}, entities.ErrCustomerNotFound)
	switch {
	case errors.Is(err, entities.ErrCustomerNotFound):
		r.logger.Warn("profile links a missing customer", slog.String("user_id", profile.UserID), slog.String("customer_id", profile.CustomerID))
		return identity, nil
	case err != nil:
		return entities.Identity{}, fmt.Errorf("%w: %w", entities.ErrProfileUnavailable, err)
	}

	identity.CustomerID = customer.ID
	identity.NetTermsStatus = termsStatus(customer.NetTermsStatus, profile.TermsReviewStatus)
	identity.NetTermsEligible = profile.AccountType == entities.AccountTypeBusiness &&
		identity.NetTermsStatus == entities.TermsStatusApproved

	return identity, nil
}

// termsStatus merges the customer flag with the profile review status,
// approved wins over pending, pending over declined.
func termsStatus(customer, review entities.TermsStatus) entities.TermsStatus {
	switch {
	case customer == entities.TermsStatusApproved || review == entities.TermsStatusApproved:
		return entities.TermsStatusApproved
	case customer == entities.TermsStatusPending || review == entities.TermsStatusPending:
		return entities.TermsStatusPending
	case customer == entities.TermsStatusDeclined || review == entities.TermsStatusDeclined:
		return entities.TermsStatusDeclined
	}
	return entities.TermsStatusNone
}
