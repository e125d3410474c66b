package i18n

// Key identifies a translatable string.
type Key string

const (
	NavDashboard    Key = "nav.dashboard"
	NavControls     Key = "nav.controls"
	NavLogs         Key = "nav.logs"
	NavSubscription Key = "nav.subscription"

	DashboardTitle        Key = "dashboard.title"
	DashboardSubtitle     Key = "dashboard.subtitle"
	DashboardStatus       Key = "dashboard.status"
	DashboardSystemActive Key = "dashboard.systemActive"
	DashboardSoilMoisture Key = "dashboard.soilMoisture"
	DashboardWaterTank    Key = "dashboard.waterTank"
	DashboardObstacle     Key = "dashboard.obstacle"
	DashboardSystemStatus Key = "dashboard.systemStatus"

	WidgetsMoistureLive     Key = "widgets.moisture.liveUpdates"
	WidgetsSoilDry          Key = "widgets.soilMoisture.dry"
	WidgetsSoilModerate     Key = "widgets.soilMoisture.moderate"
	WidgetsSoilMoist        Key = "widgets.soilMoisture.moist"
	WidgetsObstacleDetected Key = "widgets.obstacle.detected"
	WidgetsPathClear        Key = "widgets.obstacle.clear"
	WidgetsSafetyStop       Key = "widgets.obstacle.safetyStop"
	WidgetsTankOK           Key = "widgets.tank.ok"
	WidgetsTankEmpty        Key = "widgets.tank.empty"
	WidgetsRefill           Key = "widgets.tank.refill"

	ControlsMovement Key = "controls.movement"
	ControlsActions  Key = "controls.actions"
	ControlsForward  Key = "controls.forward"
	ControlsLeft     Key = "controls.left"
	ControlsStop     Key = "controls.stop"
	ControlsRight    Key = "controls.right"
	ControlsBackward Key = "controls.backward"
	ControlsWater    Key = "controls.water"
	ControlsWeed     Key = "controls.weed"

	LogsTitle            Key = "logs.title"
	LogsSubtitle         Key = "logs.subtitle"
	LogsSystemLog        Key = "logs.systemLog"
	LogsLive             Key = "logs.live"
	LogsPaused           Key = "logs.paused"
	LogsPause            Key = "logs.pause"
	LogsResume           Key = "logs.resume"
	LogsExport           Key = "logs.export"
	LogsClear            Key = "logs.clear"
	LogsNoLogs           Key = "logs.noLogs"
	LogsEntries          Key = "logs.entries"
	LogsAutoScroll       Key = "logs.autoScroll"
	LogsSystemInit       Key = "logs.systemInit"
	LogsConnected        Key = "logs.connected"
	LogsCalibration      Key = "logs.calibration"
	LogsObstacleDetected Key = "logs.obstacleDetected"
	LogsTankEmpty        Key = "logs.tankEmpty"

	SubscriptionTitle    Key = "subscription.title"
	SubscriptionSubtitle Key = "subscription.subtitle"
	SubscriptionBase     Key = "subscription.base"
	SubscriptionPremium  Key = "subscription.premium"
	SubscriptionMonth    Key = "subscription.month"
	SubscriptionYear     Key = "subscription.year"
	SubscriptionPopular  Key = "subscription.popular"
	SubscriptionChoose   Key = "subscription.choose"

	FooterText     Key = "footer.text"
	FooterSubtitle Key = "footer.subtitle"
)
