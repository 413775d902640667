package handlers

import (
	"bytes"
	"mime/multipart"

	"suredoor/app"
	"suredoor/models"
	"suredoor/services"
	"suredoor/storage"

	"github.com/gofiber/fiber/v2"
)

func ListGalleryImages(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var q services.GalleryQuery
		if err := c.QueryParser(&q); err != nil {
			return badRequest(c, "Invalid query")
		}
		images, err := a.Gallery.List(q)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch gallery", err)
		}
		categories, err := a.Gallery.Categories()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch gallery categories", err)
		}
		return success(c, fiber.Map{"images": images, "categories": categories})
	}
}

// CreateGalleryImage accepts either a multipart upload with a "file" part or
// a plain image_url
func CreateGalleryImage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.GalleryImageRequest
		if ok, err := parseBody(c, a, &req); !ok {
			return err
		}

		var imageURL string
		if isMultipart(c) {
			if file, err := c.FormFile("file"); err == nil {
				if imageURL, err = uploadFormFile(c, a, storage.BucketGallery, file); err != nil {
					return respondError(c, err, "Failed to upload image")
				}
			}
		}

		image, err := a.Gallery.Create(req, imageURL)
		if err != nil {
			if imageURL != "" {
				if _, derr := a.Uploads.DeleteImage(c.UserContext(), imageURL, storage.BucketGallery); derr != nil {
					serverErrorLog(c, "failed to release orphaned upload", derr)
				}
			}
			return respondError(c, err, "Failed to save image")
		}
		return created(c, fiber.Map{"image": image})
	}
}

func DeleteGalleryImage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Gallery.Delete(c.UserContext(), c.Params("id")); err != nil {
			return respondError(c, err, "Failed to delete image")
		}
		return success(c, fiber.Map{"message": "Image deleted"})
	}
}

// UploadImage stores a multipart "file" in the optional "bucket" and returns its URL
func UploadImage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("file")
		if err != nil {
			return badRequest(c, "file is required")
		}

		url, err := uploadFormFile(c, a, c.FormValue("bucket"), file)
		if err != nil {
			return respondError(c, err, "Failed to upload image")
		}
		return created(c, fiber.Map{"url": url})
	}
}

func uploadFormFile(c *fiber.Ctx, a *app.App, bucket string, file *multipart.FileHeader) (string, error) {
	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return a.Uploads.UploadImage(c.UserContext(), bucket, file.Filename, file.Size, f)
}

func isMultipart(c *fiber.Ctx) bool {
	return bytes.HasPrefix(c.Request().Header.ContentType(), []byte(fiber.MIMEMultipartForm))
}
