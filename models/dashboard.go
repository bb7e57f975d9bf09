package models

// DashboardSummary is the fan-in of the per-area counts shown on the
// operations dashboard.
type DashboardSummary struct {
	Suppliers     int     `json:"suppliers"`
	Employees     int     `json:"employees"`
	ColdRoomBoxes int     `json:"cold_room_boxes"`
	Vehicles      int     `json:"vehicles"`
	IntakeToday   float64 `json:"intake_today_kg"`
}
