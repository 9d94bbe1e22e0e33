/* Copyright 2025 Notevault Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package app

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/notevault/notevault/pkg/server/blob"
	"github.com/notevault/notevault/pkg/server/database"
	"github.com/notevault/notevault/pkg/server/ids"
	"github.com/notevault/notevault/pkg/server/log"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AllowedImageName reports whether the filename carries a permitted image extension
func AllowedImageName(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// UploadImage validates the upload, writes the blob to the pool and records
// its metadata. Validation happens before anything touches the disk. If the
// metadata insert fails the blob is removed again so that row and blob stay
// consistent.
func (a *App) UploadImage(ownerID, filename string, data []byte) (database.Image, error) {
	owner := NormalizeUserID(ownerID)
	if owner == "" {
		return database.Image{}, ErrUserIDRequired
	}

	name := blob.SanitizeFilename(filename)
	if name == "" {
		return database.Image{}, ErrFilenameRequired
	}
	if !AllowedImageName(name) {
		return database.Image{}, ErrUnsupportedMediaType
	}
	if a.MaxUploadSize > 0 && int64(len(data)) > a.MaxUploadSize {
		return database.Image{}, ErrUploadTooLarge
	}

	ts := a.Clock.Now().UTC()
	image := database.Image{
		UID:       ids.ImageUID(ts, name),
		Owner:     owner,
		Name:      name,
		Timestamp: ts,
	}

	if err := a.Blobs.Save(image.UID, image.Name, data); err != nil {
		return database.Image{}, pkgErrors.Wrap(err, "saving blob")
	}

	if err := a.RecordUpload(image); err != nil {
		if rmErr := a.Blobs.Remove(image.UID, image.Name); rmErr != nil {
			log.WithFields(log.Fields{
				"uid": image.UID,
				"err": rmErr,
			}).Warn("removing blob after failed metadata insert")
		}

		return database.Image{}, err
	}

	return image, nil
}

// RecordUpload inserts the metadata row for an uploaded image
func (a *App) RecordUpload(image database.Image) error {
	if err := a.DB.Create(&image).Error; err != nil {
		return pkgErrors.Wrap(err, "inserting image metadata")
	}

	return nil
}

// ListImages returns the image metadata for the given owner, oldest first
func (a *App) ListImages(ownerID string) ([]database.Image, error) {
	images := []database.Image{}

	err := a.DB.
		Where("owner = ?", NormalizeUserID(ownerID)).
		Order("timestamp ASC, uid ASC").
		Find(&images).Error
	if err != nil {
		return nil, pkgErrors.Wrap(err, "finding images")
	}

	return images, nil
}

// GetImage retrieves the metadata for the given image uid
func (a *App) GetImage(uid string) (database.Image, error) {
	var image database.Image
	err := a.DB.Where("uid = ?", uid).First(&image).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.Image{}, ErrNotFound
	} else if err != nil {
		return database.Image{}, pkgErrors.Wrap(err, "finding image")
	}

	return image, nil
}

// ImageOwner resolves the owning user id for the given image uid
func (a *App) ImageOwner(uid string) (string, error) {
	image, err := a.GetImage(uid)
	if err != nil {
		return "", err
	}

	return image.Owner, nil
}

// ReadImage returns the metadata and the blob bytes for the given uid
func (a *App) ReadImage(uid string) (database.Image, []byte, error) {
	image, err := a.GetImage(uid)
	if err != nil {
		return database.Image{}, nil, err
	}

	data, err := a.Blobs.Read(image.UID, image.Name)
	if err != nil {
		return database.Image{}, nil, err
	}

	return image, data, nil
}

// DeleteImage removes the metadata row and then the blob. The row is
// authoritative; a blob that cannot be removed is logged and left behind.
// No authorization check happens here; callers gate the deletion first.
func (a *App) DeleteImage(uid string) error {
	image, err := a.GetImage(uid)
	if err != nil {
		return err
	}

	if err := a.DB.Where("uid = ?", uid).Delete(&database.Image{}).Error; err != nil {
		return pkgErrors.Wrap(err, "deleting image metadata")
	}

	if err := a.Blobs.Remove(image.UID, image.Name); err != nil {
		log.WithFields(log.Fields{
			"uid": image.UID,
			"err": err,
		}).Warn("removing blob for deleted image")
	}

	return nil
}
