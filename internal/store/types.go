package store

// Roles carried by back-office accounts. The set is open; these are the
// labels the seed data and sign-up flow assign.
const (
	RoleSuperAdmin = "Super Admin"
	RoleManager    = "Manager"
	RoleAdmin      = "Admin"
)

// Defaults applied when a product record carries no rating or review count.
const (
	DefaultRating  = 4.5
	DefaultReviews = 100
)

// Account is a back-office operator. Credentials are stored verbatim and
// compared by exact match, mirroring the persisted document format. This is
// deliberately not a security boundary.
type Account struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	ProfilePic string `json:"profilePic"`
	Role       string `json:"role"`
	JoinDate   string `json:"joinDate"` // calendar date, YYYY-MM-DD, immutable
}

// Product is a catalog record. Sales is maintained by the system and never
// user-editable; Rating and Reviews may be zero, meaning "not provided".
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Rating   float64 `json:"rating,omitempty"`
	Reviews  int     `json:"reviews,omitempty"`
	Sales    int     `json:"sales"`
	Image    string  `json:"image,omitempty"`
}

// EffectiveRating returns the rating with the default applied.
func (p Product) EffectiveRating() float64 {
	if p.Rating <= 0 {
		return DefaultRating
	}
	return p.Rating
}

// EffectiveReviews returns the review count with the default applied.
func (p Product) EffectiveReviews() int {
	if p.Reviews <= 0 {
		return DefaultReviews
	}
	return p.Reviews
}
