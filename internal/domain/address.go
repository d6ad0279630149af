package domain

// Address represents a shipping address belonging to a user.
type Address struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Country   string `json:"country"`
	IsPrimary bool   `json:"is_primary"`
}
