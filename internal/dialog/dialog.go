// Package dialog opens the native file pickers used by the celebration
// window. A cancelled dialog is not an error.
package dialog

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
)

var (
	trackFilters = zenity.FileFilters{{
		Name:     "Audio",
		Patterns: []string{"*.wav", "*.mp3", "*.flac"},
	}}
	photoFilters = zenity.FileFilters{{
		Name:     "Images",
		Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif"},
	}}
)

// SelectTrack asks for a music file. A cancelled dialog returns "".
func SelectTrack() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Birthday Music"),
		trackFilters,
	)
	if err := canceled(err); err != nil {
		return "", fmt.Errorf("track dialog: %w", err)
	}
	return filename, nil
}

// SelectPhotos asks for gallery images. A cancelled dialog returns nil.
func SelectPhotos() ([]string, error) {
	files, err := zenity.SelectFileMultiple(
		zenity.Title("Add Photos"),
		photoFilters,
	)
	if err := canceled(err); err != nil {
		return nil, fmt.Errorf("photo dialog: %w", err)
	}
	return files, nil
}

// canceled maps a user cancel to nil.
func canceled(err error) error {
	if errors.Is(err, zenity.ErrCanceled) {
		return nil
	}
	return err
}
