package tmdb

import "slices"

// ImageBaseURL is the TMDB image CDN root
const ImageBaseURL = "https://image.tmdb.org/t/p"

// ImageKind selects the size table used to validate a requested size
type ImageKind string

const (
	ImageBackdrop ImageKind = "backdrop"
	ImageLogo     ImageKind = "logo"
	ImagePoster   ImageKind = "poster"
	ImageProfile  ImageKind = "profile"
	ImageStill    ImageKind = "still"
)

// SizeOriginal is always valid and serves the unscaled asset
const SizeOriginal = "original"

// ImageSizes lists the sizes TMDB serves per image kind
var ImageSizes = map[ImageKind][]string{
	ImageBackdrop: {"w300", "w780", "w1280", SizeOriginal},
	ImageLogo:     {"w45", "w92", "w154", "w185", "w300", "w500", SizeOriginal},
	ImagePoster:   {"w92", "w154", "w185", "w342", "w500", "w780", SizeOriginal},
	ImageProfile:  {"w45", "w185", "h632", SizeOriginal},
	ImageStill:    {"w92", "w185", "w300", SizeOriginal},
}

// ImageURL builds a CDN URL for path. An empty path yields "", and a size
// not served for kind falls back to "original".
func ImageURL(path, size string, kind ImageKind) string {
	if path == "" {
		return ""
	}
	if !slices.Contains(ImageSizes[kind], size) {
		size = SizeOriginal
	}
	return ImageBaseURL + "/" + size + path
}

// PosterURL builds a poster URL
func PosterURL(path, size string) string {
	return ImageURL(path, size, ImagePoster)
}

// BackdropURL builds a backdrop URL
func BackdropURL(path, size string) string {
	return ImageURL(path, size, ImageBackdrop)
}

// ProfileURL builds a profile URL
func ProfileURL(path, size string) string {
	return ImageURL(path, size, ImageProfile)
}

// StillURL builds an episode still URL
func StillURL(path, size string) string {
	return ImageURL(path, size, ImageStill)
}

// LogoURL builds a logo URL
func LogoURL(path, size string) string {
	return ImageURL(path, size, ImageLogo)
}
