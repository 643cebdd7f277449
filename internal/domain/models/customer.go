package models

// Customer is a buyer that orders can be placed for.
type Customer struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	LoyaltyTier string `json:"loyaltyTier"`
}

// UpsertCustomerRequest is the body for creating or replacing a customer.
type UpsertCustomerRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	LoyaltyTier string `json:"loyaltyTier"`
}
