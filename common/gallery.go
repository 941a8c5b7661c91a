package common

import (
	"path"
	"strings"
)

// ThumbsDirName is the subdirectory created inside each image directory to
// hold the generated thumbnails.
const ThumbsDirName = "thumbnails"

// ThumbExt is the extension of every generated thumbnail. Thumbnails are
// always JPEG, whatever the source format was.
const ThumbExt = ".jpg"

// imageExtensions lists the extensions treated as gallery images. Matching
// is exact, so a mixed-case extension like .Jpg is not picked up.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".JPG", ".JPEG", ".PNG"}

// IsImageFile reports whether filename has a supported image extension
func IsImageFile(filename string) bool {
	ext := path.Ext(filename)
	for _, e := range imageExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ThumbName returns the thumbnail filename for a source image name,
// replacing the extension with .jpg
func ThumbName(filename string) string {
	return strings.TrimSuffix(filename, path.Ext(filename)) + ThumbExt
}

// ThumbPath maps a slash-separated image path, as referenced from the
// gallery HTML, to its thumbnail path:
// images/a/b.png becomes images/a/thumbnails/b.jpg
func ThumbPath(imgPath string) string {
	dir, name := path.Split(imgPath)
	return dir + ThumbsDirName + "/" + ThumbName(name)
}
