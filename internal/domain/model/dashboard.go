package model

// StoreWithOwner pairs a store with its owner identity for admin listings.
type StoreWithOwner struct {
	Store Store
	Owner OwnerInfo
}

// AdminDashboard is the admin overview: filtered users, all stores with
// owners, and global counters.
type AdminDashboard struct {
	Users        []PublicUser
	Stores       []StoreWithOwner
	TotalUsers   int64
	TotalStores  int64
	TotalRatings int64
}
