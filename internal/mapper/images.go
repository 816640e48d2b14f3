package mapper

import (
	"errors"
	"fmt"
)

const (
	ImagesBaseURL   = "https://appdev-upload.nyc3.digitaloceanspaces.com/eatery-images/"
	DefaultImageURL = "https://images-prod.healthline.com/hlcmsresource/images/AN_images/health-benefits-of-apples-1296x728-feature.jpg"
)

var ErrNoImage = errors.New("no image registered")

// Upstream eateries are stored as <id>.jpg; static ones keep their curated file names.
var images = map[int64]string{
	-33: "Terrace.jpg",
	-34: "Macs-Cafe.jpg",
	-35: "Zeus.jpg",
	-36: "Gimme-Coffee.jpg",
	-37: "Louies-Lunch.jpg",
	-38: "Anabels-Grocery.jpg",
	-46: "Freege.jpg",
}

var upstreamImageIDs = []int64{
	1, 3, 4, 5, 7, 8, 10, 11, 12, 13, 14, 15, 16, 18, 19, 20, 21, 23, 24, 25,
	26, 27, 28, 29, 30, 31, 32, 33, 34, 41, 42, 43, 44, 45,
}

func init() {
	for _, id := range upstreamImageIDs {
		images[id] = fmt.Sprintf("%d.jpg", id)
	}
}

// ImageURL returns the registered image for an eatery. Callers substitute
// DefaultImageURL on error.
func ImageURL(cornellID int64) (string, error) {
	name, ok := images[cornellID]
	if !ok {
		return "", fmt.Errorf("eatery %d: %w", cornellID, ErrNoImage)
	}
	return ImagesBaseURL + name, nil
}
