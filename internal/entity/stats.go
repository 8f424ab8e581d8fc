package entity

// Stats is derived, never persisted. Recomputed on every request.
type Stats struct {
	TotalLeads     int            `json:"totalLeads"`
	TotalClients   int            `json:"totalClients"`
	LeadsByStatus  map[string]int `json:"leadsByStatus"`
	ConversionRate int            `json:"conversionRate"` // rounded percentage
}
