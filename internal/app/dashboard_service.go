package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/contractor-portal/internal/app/fanout"
	"github.com/jsamuelsen11/contractor-portal/internal/domain/resource"
	"github.com/jsamuelsen11/contractor-portal/internal/ports"
)

// Compile-time check that DashboardService implements ports.DashboardService.
var _ ports.DashboardService = (*DashboardService)(nil)

// dashboardSections are loaded for the landing page, in display order.
var dashboardSections = []resource.Kind{
	resource.KindClients,
	resource.KindEstimates,
	resource.KindJobs,
}

// dashboardWorkers bounds concurrent backend calls per summary.
const dashboardWorkers = 3

// DashboardService loads the landing-page sections concurrently.
type DashboardService struct {
	client ports.ResourceClient
	logger *slog.Logger
}

// NewDashboardService creates a DashboardService. A nil logger discards output.
func NewDashboardService(client ports.ResourceClient, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DashboardService{client: client, logger: logger}
}

// Summary fetches every section. A section that fails carries its error; the
// summary itself only fails when ctx is already done.
func (s *DashboardService) Summary(ctx context.Context) (*ports.Dashboard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := fanout.Run(ctx, dashboardWorkers, dashboardSections,
		func(ctx context.Context, kind resource.Kind) (resource.Payload, error) {
			return s.client.List(ctx, kind, nil)
		})

	dash := &ports.Dashboard{Sections: make([]ports.DashboardSection, len(results))}
	for i, r := range results {
		kind := dashboardSections[i]
		dash.Sections[i] = ports.DashboardSection{Kind: kind, Data: r.Value, Err: r.Err}
		if r.Err != nil {
			s.logger.WarnContext(ctx, "dashboard section failed",
				slog.String("section", kind.String()),
				slog.Any("error", r.Err),
			)
		}
	}
	return dash, nil
}
