package services

import "errors"

// Common service-level errors
var (
	// Auth errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminNotConfigured = errors.New("admin credentials are not configured")
	ErrSessionNotFound    = errors.New("session not found")
	ErrWeakPassword       = errors.New("password must be between 8 and 72 characters")

	// Content errors
	ErrPostNotFound       = errors.New("blog post not found")
	ErrProgramNotFound    = errors.New("program not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrImageNotFound      = errors.New("gallery image not found")
	ErrMessageNotFound    = errors.New("message not found")
	ErrSlugTaken          = errors.New("slug is already in use")
	ErrInvalidAmount      = errors.New("donation amount must be greater than zero")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format")

	// Settings errors
	ErrReservedSetting = errors.New("setting is reserved")

	// Upload errors
	ErrInvalidUpload = errors.New("only image uploads are allowed")
	ErrFileTooLarge  = errors.New("file is too large")
	ErrUnknownBucket = errors.New("unknown storage bucket")
)
