package database

import (
	"suredoor/models"
	"time"
)

// ==================== DONATIONS ====================

const donationColumns = `id, donor_name, donor_email, amount, donation_type, message, anonymous, created_at`

func scanDonation(s rowScanner) (*models.Donation, error) {
	var d models.Donation
	if err := s.Scan(&d.ID, &d.DonorName, &d.DonorEmail, &d.Amount, &d.DonationType, &d.Message, &d.Anonymous, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) GetDonations() ([]models.Donation, error) {
	rows, err := r.db.Query(`SELECT ` + donationColumns + ` FROM donations ORDER BY created_at DESC`)
	return scanAll(rows, err, scanDonation)
}

func (r *Repository) CreateDonation(d *models.Donation) error {
	_, err := r.db.Exec(`
		INSERT INTO donations (`+donationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, d.ID, d.DonorName, d.DonorEmail, d.Amount, d.DonationType, d.Message, d.Anonymous, d.CreatedAt)
	return err
}

// GetDonationStats aggregates totals; monthStart bounds the "this month" sum
func (r *Repository) GetDonationStats(monthStart time.Time) (*models.DonationStats, error) {
	var stats models.DonationStats
	err := r.db.QueryRow(`
		SELECT
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(CASE WHEN created_at >= ? THEN amount ELSE 0 END), 0),
			COUNT(DISTINCT CASE WHEN donation_type = 'monthly' THEN lower(donor_email) END),
			COUNT(*)
		FROM donations
	`, monthStart).Scan(&stats.TotalAmount, &stats.ThisMonthAmount, &stats.MonthlyDonors, &stats.Count)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
