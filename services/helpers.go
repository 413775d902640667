package services

import (
	"context"
	"log/slog"
	"strings"

	"suredoor/slug"
)

// fallbackSlug is used when a title has no characters that survive slug.Make
const fallbackSlug = "untitled"

// resolveSlug picks the slug for a record. An explicit slug must be free; a
// derived one is suffixed until it is.
func resolveSlug(explicit, title, excludeID string, exists func(slug, excludeID string) (bool, error)) (string, error) {
	explicit = strings.TrimSpace(explicit)
	if explicit != "" {
		taken, err := exists(explicit, excludeID)
		if err != nil {
			return "", err
		}
		if taken {
			return "", ErrSlugTaken
		}
		return explicit, nil
	}

	base := slug.Make(title)
	if base == "" {
		base = fallbackSlug
	}
	return slug.Unique(base, func(candidate string) (bool, error) {
		return exists(candidate, excludeID)
	})
}

// releaseImage queues an uploaded image for deletion. Failures are logged, the
// owning record is already gone.
func releaseImage(ctx context.Context, images ImageRemover, url, bucket string) {
	if images == nil || url == "" {
		return
	}
	if _, err := images.DeleteImage(ctx, url, bucket); err != nil {
		slog.Warn("failed to queue image deletion", "url", url, "bucket", bucket, "error", err)
	}
}

// distinct returns the non-empty values in first-seen order
func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
