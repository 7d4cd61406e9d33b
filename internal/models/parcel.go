package models

// Parcel statuses. Admins may additionally set free-form intermediate
// values through the booking-details update.
const (
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
	StatusDelivered = "delivered"
)

// Parcel represents a delivery booking. The buyer is referenced by email,
// not by user id. DeliveryMenID holds the string form of a User id and is
// never validated to exist. Dates are stored as the client submitted them.
type Parcel struct {
	BaseModel
	BuyerEmail              string  `gorm:"index" json:"buyerEmail"`
	BuyerName               string  `json:"buyerName"`
	BuyerPhoneNo            string  `json:"buyerPhoneNo"`
	DeliveryAddress         string  `json:"deliveryAddress"`
	Latitude                float64 `json:"latitude"`
	Longitude               float64 `json:"longitude"`
	DeliveryDate            string  `json:"deliveryDate"`
	ApproximateDeliveryDate string  `json:"approximateDeliveryDate"`
	ParcelType              string  `json:"parcelType"`
	ParcelWeight            float64 `json:"parcelWeight"`
	Price                   float64 `json:"price"`
	ReceiverName            string  `json:"receiverName"`
	ReceiverPhoneNo         string  `json:"receiverPhoneNo"`
	DeliveryMenID           string  `gorm:"index" json:"deliveryMenId"`
	Status                  string  `json:"status"`
}
