package services

import (
	"context"
	"fmt"

	"youthstream/palco/internal/db/repositories"
	"youthstream/palco/internal/logging"
	"youthstream/palco/internal/metrics"
	"youthstream/palco/internal/models/dtos"
	"youthstream/palco/internal/models/entities"
)

const donationListLimit = 100

// DonationService records contributions. It never talks to a payment
// provider; the donation flow settles out of band.
type DonationService struct {
	repo       *repositories.DonationRepository
	metricsReg *metrics.MetricsRegistry
}

func NewDonationService(repo *repositories.DonationRepository, metricsReg *metrics.MetricsRegistry) *DonationService {
	return &DonationService{repo: repo, metricsReg: metricsReg}
}

// Record validates and stores one donation. userID is empty for
// anonymous donors.
func (svc *DonationService) Record(ctx context.Context, req dtos.CreateDonationReq, userID string) (*dtos.DonationResponse, error) {
	if req.Amount < 1 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if len(req.Method) < 2 {
		return nil, fmt.Errorf("%w: method is required", ErrValidation)
	}

	d := &entities.Donation{
		AmountCents: req.Amount,
		Method:      req.Method,
	}
	if req.Identifier != "" {
		d.Identifier = &req.Identifier
	}
	if req.Name != "" {
		d.Name = &req.Name
	}
	if userID != "" {
		d.UserID = &userID
	}

	if err := svc.repo.Insert(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to record donation: %w", err)
	}

	svc.metricsReg.DonationsTotal.Inc()
	svc.metricsReg.DonationAmountCents.Add(float64(req.Amount))
	logging.Info("Donation recorded", "donation_id", d.ID, "method", d.Method, "amount_cents", d.AmountCents)

	resp := donationToResponse(d)
	return &resp, nil
}

func (svc *DonationService) List(ctx context.Context) ([]dtos.DonationResponse, error) {
	donations, err := svc.repo.List(ctx, donationListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}

	out := make([]dtos.DonationResponse, 0, len(donations))
	for i := range donations {
		out = append(out, donationToResponse(&donations[i]))
	}
	return out, nil
}

func donationToResponse(d *entities.Donation) dtos.DonationResponse {
	resp := dtos.DonationResponse{
		ID:        d.ID,
		Amount:    d.AmountCents,
		Method:    d.Method,
		CreatedAt: d.CreatedAt,
	}
	if d.Name != nil {
		resp.Name = *d.Name
	}
	return resp
}
