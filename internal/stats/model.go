package stats

// Stat is one dashboard tile within a category. Icon and color are opaque
// presentation hints stored for the frontend.
type Stat struct {
	ID       string
	Category string
	Label    string
	Value    string
	Icon     string
	Color    string
}
