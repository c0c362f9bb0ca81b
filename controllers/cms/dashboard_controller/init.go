package dashboard_controller

import (
	"github.com/devifai-2026/feauage-backend-sub001/services/reporting"
)

var (
	dashboardService *reporting.DashboardService
	targetService    *reporting.TargetService
)

// Init wires the services the dashboard handlers read from
func Init(dashboard *reporting.DashboardService, targets *reporting.TargetService) {
	dashboardService = dashboard
	targetService = targets
}
