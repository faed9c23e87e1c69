package model

// VintageSales aggregates all sales of one (wine name, vintage year) pair.
type VintageSales struct {
	WineName     string  `json:"wine_name"`
	VintageYear  int     `json:"vintage_year"`
	BottlesSold  int     `json:"bottles_sold"`
	GlassesSold  int     `json:"glasses_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// LocationStock summarises one inventory record for the by-location report.
type LocationStock struct {
	WineName         string `json:"wine_name"`
	VintageYear      int    `json:"vintage_year"`
	Producer         string `json:"producer"`
	BottlesCount     int    `json:"bottles_count"`
	GlassesAvailable int    `json:"glasses_available"`
}

// CascadeResult counts the records removed by a wine delete.
type CascadeResult struct {
	Wines          int
	InventoryItems int
	Sales          int
}
