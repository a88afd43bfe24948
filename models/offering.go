package models

// Offering is a priced, sellable treatment or product. Its free-text name is
// the only link back to a slot's treatment and staff member; many offerings
// may share a session type.
type Offering struct {
	ID            string  `json:"id"`
	SessionTypeID int     `json:"sessionTypeId,omitempty"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	OnlinePrice   float64 `json:"onlinePrice,omitempty"`
	SellOnline    bool    `json:"sellOnline"`
	Duration      int     `json:"duration,omitempty"` // minutes
}
