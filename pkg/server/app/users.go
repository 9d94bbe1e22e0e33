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

	"github.com/notevault/notevault/pkg/server/database"
	"github.com/notevault/notevault/pkg/server/log"
	"github.com/notevault/notevault/pkg/server/permissions"
	pkgErrors "github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser creates a user with the given id and password. The id is
// normalized to uppercase, so ids that differ only in case collide.
func (a *App) CreateUser(userID, password string) (database.User, error) {
	id := NormalizeUserID(userID)
	if id == "" {
		return database.User{}, ErrUserIDRequired
	}
	if !ValidUserID(id) {
		return database.User{}, ErrInvalidUserID
	}
	if password == "" {
		return database.User{}, ErrPasswordRequired
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return database.User{}, pkgErrors.Wrap(err, "hashing password")
	}

	tx := a.DB.Begin()

	var count int64
	if err := tx.Model(database.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "counting user")
	}
	if count > 0 {
		tx.Rollback()
		return database.User{}, ErrDuplicateUser
	}

	user := database.User{
		ID:           id,
		PasswordHash: string(hashedPassword),
	}
	if err := tx.Create(&user).Error; err != nil {
		// The primary key constraint is the safety net for a racing insert
		tx.Rollback()
		return database.User{}, pkgErrors.Wrap(err, "inserting user")
	}

	if err := tx.Commit().Error; err != nil {
		return database.User{}, pkgErrors.Wrap(err, "committing user creation")
	}

	return user, nil
}

// GetUser retrieves the user with the given id
func (a *App) GetUser(userID string) (database.User, error) {
	var user database.User
	err := a.DB.Where("id = ?", NormalizeUserID(userID)).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.User{}, ErrNotFound
	} else if err != nil {
		return database.User{}, pkgErrors.Wrap(err, "finding user")
	}

	return user, nil
}

// ListUserIDs returns all user ids in a stable order
func (a *App) ListUserIDs() ([]string, error) {
	ids := []string{}
	if err := a.DB.Model(database.User{}).Order("id ASC").Pluck("id", &ids).Error; err != nil {
		return nil, pkgErrors.Wrap(err, "listing user ids")
	}

	return ids, nil
}

// Verify reports whether the given plaintext password matches the stored
// hash for the user. It returns false, never an error, when the user does
// not exist.
func (a *App) Verify(userID, password string) bool {
	var user database.User
	err := a.DB.Where("id = ?", NormalizeUserID(userID)).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false
	} else if err != nil {
		log.ErrorWrap(err, "finding user for verification")
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// Authenticate resolves the user for the given credentials
func (a *App) Authenticate(userID, password string) (*database.User, error) {
	user, err := a.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrLoginInvalid
	}

	return &user, nil
}

// PurgeUser deletes a user together with all notes, image metadata and
// sessions it owns, in one transaction. It returns the uids of the deleted
// images after removing their blobs from the pool; blob removal is
// best-effort and never rolls back the metadata deletion. Purging the
// reserved admin account always fails.
func (a *App) PurgeUser(userID string) ([]string, error) {
	id := NormalizeUserID(userID)
	if id == permissions.AdminUserID {
		return nil, ErrForbidden
	}

	tx := a.DB.Begin()

	var user database.User
	err := tx.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return nil, ErrNotFound
	} else if err != nil {
		tx.Rollback()
		return nil, pkgErrors.Wrap(err, "finding user")
	}

	var images []database.Image
	if err := tx.Where("owner = ?", id).Find(&images).Error; err != nil {
		tx.Rollback()
		return nil, pkgErrors.Wrapf(ErrDeletionFailed, "listing images: %v", err)
	}

	if err := tx.Where("owner = ?", id).Delete(&database.Note{}).Error; err != nil {
		tx.Rollback()
		return nil, pkgErrors.Wrapf(ErrDeletionFailed, "deleting notes: %v", err)
	}
	if err := tx.Where("owner = ?", id).Delete(&database.Image{}).Error; err != nil {
		tx.Rollback()
		return nil, pkgErrors.Wrapf(ErrDeletionFailed, "deleting images: %v", err)
	}
	if err := tx.Where("user_id = ?", id).Delete(&database.Session{}).Error; err != nil {
		tx.Rollback()
		return nil, pkgErrors.Wrapf(ErrDeletionFailed, "deleting sessions: %v", err)
	}
	if err := tx.Where("id = ?", id).Delete(&database.User{}).Error; err != nil {
		tx.Rollback()
		return nil, pkgErrors.Wrapf(ErrDeletionFailed, "deleting user: %v", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, pkgErrors.Wrapf(ErrDeletionFailed, "committing: %v", err)
	}

	// The metadata is authoritative at this point. A blob that cannot be
	// removed is a leak to clean up later, not a failed deletion.
	uids := make([]string, 0, len(images))
	for _, img := range images {
		uids = append(uids, img.UID)

		if err := a.Blobs.Remove(img.UID, img.Name); err != nil {
			log.WithFields(log.Fields{
				"uid": img.UID,
				"err": err,
			}).Warn("removing blob for purged user")
		}
	}

	return uids, nil
}
