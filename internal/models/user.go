package models

// UserType classifies a user's authorization role. An empty value is
// treated the same as Customer.
type UserType string

const (
	UserTypeCustomer    UserType = "Customer"
	UserTypeAdmin       UserType = "Admin"
	UserTypeDeliveryMen UserType = "DeliveryMen"
)

// User represents an account created on first sign-in. Email is the only
// external lookup key; it carries no unique constraint, so duplicate
// creation under a concurrent first sign-in is possible and tolerated.
type User struct {
	BaseModel
	Email        string   `gorm:"index" json:"email"`
	DisplayName  string   `json:"displayName"`
	PhotoURL     string   `json:"photoURL"`
	UserType     UserType `json:"userType"`
	BuyerPhoneNo string   `json:"buyerPhoneNo"`
}
