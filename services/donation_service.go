package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"suredoor/listing"
	"suredoor/models"

	"github.com/google/uuid"
)

type DonationQuery struct {
	Search string `query:"search"`
	Type   string `query:"type"`
}

// DonationList is a filtered donation listing with the sum of its amounts
type DonationList struct {
	Donations   []models.Donation `json:"donations"`
	TotalAmount int64             `json:"total_amount"`
}

// DonationService records donation pledges and reports on them
type DonationService struct {
	repo DonationRepository
}

func NewDonationService(repo DonationRepository) *DonationService {
	return &DonationService{repo: repo}
}

func (ds *DonationService) List(q DonationQuery) (*DonationList, error) {
	donations, err := ds.repo.GetDonations()
	if err != nil {
		return nil, err
	}

	filtered := listing.Filter(donations,
		func(d models.Donation) bool { return listing.AnyContains(q.Search, d.DonorName, d.DonorEmail) },
		func(d models.Donation) bool { return listing.Category(d.DonationType, q.Type) },
	)

	var total int64
	for _, d := range filtered {
		total += d.Amount
	}

	return &DonationList{Donations: filtered, TotalAmount: total}, nil
}

// Create records a pledge from the public donate form
func (ds *DonationService) Create(req models.DonationRequest) (*models.Donation, error) {
	amount := req.FinalAmount()
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	donation := &models.Donation{
		ID:           uuid.New().String(),
		DonorName:    strings.TrimSpace(strings.TrimSpace(req.FirstName) + " " + strings.TrimSpace(req.LastName)),
		DonorEmail:   strings.TrimSpace(req.Email),
		Amount:       amount,
		DonationType: req.DonationType,
		Message:      strings.TrimSpace(req.Message),
		Anonymous:    req.Anonymous,
		CreatedAt:    time.Now().UTC(),
	}

	if err := ds.repo.CreateDonation(donation); err != nil {
		return nil, err
	}
	return donation, nil
}

// Stats aggregates totals; "this month" is the calendar month containing now
func (ds *DonationService) Stats(now time.Time) (*models.DonationStats, error) {
	return ds.repo.GetDonationStats(monthStart(now))
}

var csvHeader = []string{"date", "donor", "email", "amount", "type", "anonymous", "message"}

// ExportCSV writes the donations matching q as CSV
func (ds *DonationService) ExportCSV(w io.Writer, q DonationQuery) error {
	list, err := ds.List(q)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, d := range list.Donations {
		record := []string{
			d.CreatedAt.Format(time.RFC3339),
			csvText(d.DisplayName()),
			csvText(d.DonorEmail),
			strconv.FormatInt(d.Amount, 10),
			d.DonationType,
			strconv.FormatBool(d.Anonymous),
			csvText(d.Message),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// csvText quotes donor-supplied text that a spreadsheet would evaluate as a formula
func csvText(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

func monthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
