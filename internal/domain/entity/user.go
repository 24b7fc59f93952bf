package entity

import "time"

// Role is the authorization role stored on a user row.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is the aggregate root for account identity.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Name       string    `json:"name"`
	Role       Role      `json:"role"`
	IsBusker   bool      `json:"isBusker"`
	IsBusiness bool      `json:"isBusiness"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// CanManage reports whether u may mutate a row owned by ownerID.
// This is the owner-or-admin rule applied to every mutable entity.
func (u *User) CanManage(ownerID string) bool {
	return u.ID == ownerID || u.IsAdmin()
}

// Owner is the display projection of a user joined onto listing and post reads.
type Owner struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	IsBusker bool   `json:"isBusker,omitempty"`
}

// Stats is the admin dashboard count record. The busking figure counts
// upcoming events only; every other figure is a full table count.
type Stats struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalPosts     int64 `json:"totalPosts"`
	TotalBusking   int64 `json:"totalBusking"`
	TotalBusiness  int64 `json:"totalBusiness"`
	TotalEvents    int64 `json:"totalEvents"`
	TotalCommunity int64 `json:"totalCommunity"`
	TotalLesson    int64 `json:"totalLesson"`
	TotalNayogi    int64 `json:"totalNayogi"`
	TotalGarden    int64 `json:"totalGarden"`
	TotalHotspot   int64 `json:"totalHotspot"`
}
