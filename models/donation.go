package models

import "time"

const (
	DonationOneTime = "one-time"
	DonationMonthly = "monthly"
)

type Donation struct {
	ID           string    `json:"id"`
	DonorName    string    `json:"donor_name"`
	DonorEmail   string    `json:"donor_email"`
	Amount       int64     `json:"amount"`
	DonationType string    `json:"donation_type"`
	Message      string    `json:"message"`
	Anonymous    bool      `json:"anonymous"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName hides the donor behind "Anonymous" when they asked for it
func (d Donation) DisplayName() string {
	if d.Anonymous || d.DonorName == "" {
		return "Anonymous"
	}
	return d.DonorName
}

type DonationStats struct {
	TotalAmount     int64 `json:"total_amount"`
	ThisMonthAmount int64 `json:"this_month_amount"`
	MonthlyDonors   int   `json:"monthly_donors"`
	Count           int   `json:"count"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
