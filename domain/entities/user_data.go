package entities

// UserData is the combined ledger view of one user in one guild
type UserData struct {
	DiscordID int64
	GuildID   int64
	Balance   int64
	Inventory []*InventoryItem
	Boosts    []*ActiveBoost
	RobStats  *RobStats
}

// TotalItems returns the sum of all held quantities
func (d *UserData) TotalItems() int64 {
	var total int64
	for _, item := range d.Inventory {
		total += item.Quantity
	}
	return total
}
