package models

import "time"

// BookingStatus is the booking lifecycle state. Only confirmed bookings
// count towards collaborator commission.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingPayment is one entry of a booking's payment history. Entries
// created during offer conversion carry the method tag
// "offer-conversion" so pre-payments stay visible in reporting.
type BookingPayment struct {
	ServiceRef string    `bson:"serviceRef,omitempty" json:"serviceRef,omitempty"`
	Amount     float64   `bson:"amount" json:"amount"`
	Method     string    `bson:"method" json:"method"`
	Date       time.Time `bson:"date" json:"date"`
}

// Booking is the accepted, financially authoritative form of an offer.
// Services are independent copies of the offer's line items; editing a
// booking never touches the historical offer.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	OfferRef        string        `bson:"offerRef,omitempty" json:"offerRef,omitempty"`
	ClientRef       string        `bson:"clientRef" json:"clientRef"`
	CompanyID       string        `bson:"companyId" json:"companyId"`
	CollaboratorRef string        `bson:"collaboratorRef,omitempty" json:"collaboratorRef,omitempty"`
	Status          BookingStatus `bson:"status" json:"status"`

	CheckIn  time.Time `bson:"checkIn" json:"checkIn"`
	CheckOut time.Time `bson:"checkOut" json:"checkOut"`

	Services       []LineItem       `bson:"services" json:"services"`
	PaymentHistory []BookingPayment `bson:"paymentHistory,omitempty" json:"paymentHistory,omitempty"`

	TotalAmount   float64       `bson:"totalAmount" json:"totalAmount"`
	TotalPaid     float64       `bson:"totalPaid" json:"totalPaid"`
	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
