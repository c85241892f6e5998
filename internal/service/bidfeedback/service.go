package bidfeedback

import (
	"context"
	"time"

	"fieldops/internal/constants"
	"fieldops/internal/storage"
)

// BidFeedbackStorage is the slice of the store this service reads and
// writes. *mysql.Storage satisfies it.
type BidFeedbackStorage interface {
	GetCostCodes(ctx context.Context, projectID string, activeOnly bool) ([]storage.CostCode, error)
	GetProductivityEntries(ctx context.Context, filter storage.EntryFilter) ([]storage.ProductivityEntry, error)
	InsertBidFeedbackReport(ctx context.Context, report storage.BidFeedbackReport) error
	GetProjectOrg(ctx context.Context, projectID string) (string, error)
	UpsertUnitPrice(ctx context.Context, entry storage.UnitPriceEntry) error
}

type Config struct {
	LaborRatePerHour    float64
	CriticalVariancePct float64
	CautionVariancePct  float64
}

func DefaultConfig() Config {
	return Config{
		LaborRatePerHour:    constants.LaborRatePerHour,
		CriticalVariancePct: constants.CriticalVariancePct,
		CautionVariancePct:  constants.CautionVariancePct,
	}
}

type BidFeedbackService struct {
	storage BidFeedbackStorage
	cfg     Config

	now func() time.Time
}

func NewBidFeedbackService(storage BidFeedbackStorage, cfg Config) *BidFeedbackService {
	return &BidFeedbackService{
		storage: storage,
		cfg:     cfg,
		now:     time.Now,
	}
}
