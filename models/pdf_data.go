package models

type LoadingSheetPDFData struct {
	Facility    *FacilitySettings // packhouse identity block
	Sheet       *LoadingSheet     // sheet details
	Contacts    string            // formatted contact numbers
	Date        string            // formatted date
	TotalBoxes  int
	TotalWeight float64
	WeightWords string
	CopyTitle   string
	LineCount   int
}
