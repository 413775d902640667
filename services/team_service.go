package services

import (
	"context"
	"strings"
	"time"

	"suredoor/listing"
	"suredoor/models"
	"suredoor/storage"

	"github.com/google/uuid"
)

type TeamQuery struct {
	Search string `query:"search"`
}

// TeamService handles business logic for team members
type TeamService struct {
	repo   TeamRepository
	images ImageRemover
}

func NewTeamService(repo TeamRepository, images ImageRemover) *TeamService {
	return &TeamService{repo: repo, images: images}
}

// List returns all members by display order, matching name or role
func (ts *TeamService) List(q TeamQuery) ([]models.TeamMember, error) {
	members, err := ts.repo.GetTeamMembers(false)
	if err != nil {
		return nil, err
	}
	return listing.Filter(members, func(m models.TeamMember) bool {
		return listing.AnyContains(q.Search, m.Name, m.Role)
	}), nil
}

func (ts *TeamService) ListActive() ([]models.TeamMember, error) {
	return ts.repo.GetTeamMembers(true)
}

func (ts *TeamService) GetByID(id string) (*models.TeamMember, error) {
	member, err := ts.repo.GetTeamMemberByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrTeamMemberNotFound
	}
	return member, nil
}

func (ts *TeamService) Create(req models.TeamMemberRequest) (*models.TeamMember, error) {
	member := &models.TeamMember{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().UTC(),
	}
	applyTeamRequest(member, req)

	if err := ts.repo.CreateTeamMember(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (ts *TeamService) Update(ctx context.Context, id string, req models.TeamMemberRequest) (*models.TeamMember, error) {
	member, err := ts.GetByID(id)
	if err != nil {
		return nil, err
	}

	oldImage := member.Image
	applyTeamRequest(member, req)

	if err := ts.repo.UpdateTeamMember(member); err != nil {
		return nil, err
	}

	if oldImage != member.Image {
		releaseImage(ctx, ts.images, oldImage, storage.BucketTeam)
	}
	return member, nil
}

func (ts *TeamService) Delete(ctx context.Context, id string) error {
	member, err := ts.GetByID(id)
	if err != nil {
		return err
	}

	if err := ts.repo.DeleteTeamMember(id); err != nil {
		return err
	}

	releaseImage(ctx, ts.images, member.Image, storage.BucketTeam)
	return nil
}

func applyTeamRequest(member *models.TeamMember, req models.TeamMemberRequest) {
	member.Name = strings.TrimSpace(req.Name)
	member.Role = strings.TrimSpace(req.Role)
	member.Bio = strings.TrimSpace(req.Bio)
	member.Image = strings.TrimSpace(req.Image)
	member.DisplayOrder = req.DisplayOrder
	member.Active = req.Active
}
