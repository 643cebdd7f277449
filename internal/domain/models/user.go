package models

// UserSummary is a staff account as listed by the admin API.
type UserSummary struct {
	ID       string   `json:"id"`
	UserName string   `json:"userName"`
	Email    string   `json:"email"`
	FullName string   `json:"fullName,omitempty"`
	Roles    []string `json:"roles"`
}

// UserActivity is an audit entry attached to a user.
type UserActivity struct {
	ID            string    `json:"id"`
	ActivityType  string    `json:"activityType"`
	Description   string    `json:"description"`
	OccurredAtUTC Timestamp `json:"occurredAtUtc"`
}

// UserDetail extends UserSummary with lockout state and recent activity.
type UserDetail struct {
	UserSummary
	IsLockedOut      bool           `json:"isLockedOut"`
	LockoutEndUTC    *Timestamp     `json:"lockoutEndUtc,omitempty"`
	PhoneNumber      *string        `json:"phoneNumber,omitempty"`
	RecentActivities []UserActivity `json:"recentActivities"`
}

// CreateUserRequest provisions a manager or cashier account.
type CreateUserRequest struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"fullName"`
	Role     string `json:"role" validate:"required"`
}

// UpdateUserRequest edits contact details and the managed role.
type UpdateUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	FullName *string `json:"fullName,omitempty"`
	Role     string  `json:"role" validate:"required"`
}

// LockoutRequest locks or unlocks an account. Lockout must be present.
type LockoutRequest struct {
	Lockout *bool `json:"lockout" validate:"required"`
}
