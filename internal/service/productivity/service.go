package productivity

import (
	"context"
	"time"

	"fieldops/internal/constants"
	"fieldops/internal/storage"
)

// ProductivityStorage is everything the engine needs from the store.
// *mysql.Storage satisfies it; tests plug in fakes.
type ProductivityStorage interface {
	GetCostCodeByID(ctx context.Context, projectID, costCodeID string) (*storage.CostCode, error)
	FindCostCodeByActivity(ctx context.Context, projectID, csiDivision, activity string) (*storage.CostCode, error)
	GetCostCodes(ctx context.Context, projectID string, activeOnly bool) ([]storage.CostCode, error)

	GetProductivityEntries(ctx context.Context, filter storage.EntryFilter) ([]storage.ProductivityEntry, error)
	InsertProductivityEntry(ctx context.Context, entry storage.ProductivityEntry) error

	GetBaselines(ctx context.Context, projectID, costCodeID string, activeOnly bool) ([]storage.ProductivityBaseline, error)
	DeactivateBaseline(ctx context.Context, id string) error
	InsertBaseline(ctx context.Context, baseline storage.ProductivityBaseline) error

	GetAnalytics(ctx context.Context, projectID, costCodeID string) ([]storage.ProductivityAnalytics, error)
	InsertAnalytics(ctx context.Context, analytics storage.ProductivityAnalytics) error
}

// Config carries the engine tunables so thresholds are overridable per
// deployment instead of living as magic numbers in the math.
type Config struct {
	LaborRatePerHour      float64
	MinBaselineDataPoints int
	AtRiskIndex           float64
}

func DefaultConfig() Config {
	return Config{
		LaborRatePerHour:      constants.LaborRatePerHour,
		MinBaselineDataPoints: constants.MinBaselineDataPoints,
		AtRiskIndex:           constants.AtRiskProductivityIndex,
	}
}

type ProductivityService struct {
	storage ProductivityStorage
	cfg     Config

	// now is swappable so period slicing is testable.
	now func() time.Time
}

func NewProductivityService(storage ProductivityStorage, cfg Config) *ProductivityService {
	return &ProductivityService{
		storage: storage,
		cfg:     cfg,
		now:     time.Now,
	}
}

const dateLayout = "2006-01-02"
