package libs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadToCloudinary mirrors a locally saved product image to Cloudinary
// and returns the hosted URL. Returns an error when Cloudinary is not
// configured; callers fall back to the local upload path.
func UploadToCloudinary(localPath string) (string, error) {
	if _, err := os.Stat(localPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", localPath)
	}

	cldURL := os.Getenv("CLOUDINARY_URL")
	if cldURL == "" {
		return "", fmt.Errorf("cloudinary environment variables not set")
	}

	cld, err := cloudinary.NewFromURL(cldURL)
	if err != nil {
		return "", fmt.Errorf("cloudinary init failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, localPath, uploader.UploadParams{
		Folder: "buddies-inn/products",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %v", err)
	}

	fmt.Printf("[Cloudinary] Uploaded %s -> %s\n", localPath, result.SecureURL)
	return result.SecureURL, nil
}
