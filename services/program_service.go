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

type ProgramQuery struct {
	Search     string `query:"search"`
	Department string `query:"department"`
}

// ProgramService handles business logic for programs
type ProgramService struct {
	repo   ProgramRepository
	images ImageRemover
}

func NewProgramService(repo ProgramRepository, images ImageRemover) *ProgramService {
	return &ProgramService{repo: repo, images: images}
}

func (ps *ProgramService) List(q ProgramQuery) ([]models.Program, error) {
	programs, err := ps.repo.GetPrograms(false)
	if err != nil {
		return nil, err
	}

	return listing.Filter(programs,
		func(p models.Program) bool { return listing.Contains(p.Title, q.Search) },
		func(p models.Program) bool { return listing.Category(p.Department, q.Department) },
	), nil
}

func (ps *ProgramService) ListActive() ([]models.Program, error) {
	return ps.repo.GetPrograms(true)
}

// GetActiveBySlug finds a program for the public site; inactive programs are not found
func (ps *ProgramService) GetActiveBySlug(slug string) (*models.Program, error) {
	program, err := ps.repo.GetProgramBySlug(slug)
	if err != nil {
		return nil, err
	}
	if program == nil || !program.Active {
		return nil, ErrProgramNotFound
	}
	return program, nil
}

func (ps *ProgramService) GetByID(id string) (*models.Program, error) {
	program, err := ps.repo.GetProgramByID(id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}
	return program, nil
}

func (ps *ProgramService) Create(req models.ProgramRequest) (*models.Program, error) {
	programSlug, err := resolveSlug(req.Slug, req.Title, "", ps.repo.ProgramSlugExists)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	program := &models.Program{
		ID:        uuid.New().String(),
		Slug:      programSlug,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyProgramRequest(program, req)

	if err := ps.repo.CreateProgram(program); err != nil {
		return nil, err
	}
	return program, nil
}

func (ps *ProgramService) Update(ctx context.Context, id string, req models.ProgramRequest) (*models.Program, error) {
	program, err := ps.GetByID(id)
	if err != nil {
		return nil, err
	}

	programSlug, err := resolveSlug(req.Slug, req.Title, id, ps.repo.ProgramSlugExists)
	if err != nil {
		return nil, err
	}

	oldImage := program.Image
	program.Slug = programSlug
	applyProgramRequest(program, req)

	if err := ps.repo.UpdateProgram(program); err != nil {
		return nil, err
	}

	if oldImage != program.Image {
		releaseImage(ctx, ps.images, oldImage, storage.BucketPrograms)
	}
	return program, nil
}

func (ps *ProgramService) Delete(ctx context.Context, id string) error {
	program, err := ps.GetByID(id)
	if err != nil {
		return err
	}

	if err := ps.repo.DeleteProgram(id); err != nil {
		return err
	}

	releaseImage(ctx, ps.images, program.Image, storage.BucketPrograms)
	return nil
}

func applyProgramRequest(program *models.Program, req models.ProgramRequest) {
	program.Title = strings.TrimSpace(req.Title)
	program.Description = strings.TrimSpace(req.Description)
	program.Content = req.Content
	program.Image = strings.TrimSpace(req.Image)
	program.Department = req.Department
	program.Active = req.Active
}
