package validation

import (
	"errors"
	"unicode/utf8"
)

// MaxContentBytes caps a single message body.
const MaxContentBytes = 100 * 1024

// ValidateFolderPassword checks that a folder password can be hashed.
func ValidateFolderPassword(password string) error {
	if password == "" {
		return errors.New("password required")
	}

	// Maximum length: 72 bytes (bcrypt limitation)
	// bcrypt silently truncates or rejects longer input depending on version
	if len(password) > 72 {
		return errors.New("password must not exceed 72 bytes")
	}

	return nil
}

// ValidateFolderName validates the optional display name. Empty is allowed.
func ValidateFolderName(name string) error {
	if utf8.RuneCountInString(name) > 100 {
		return errors.New("name is too long (max 100 characters)")
	}

	return nil
}

// ValidateContent validates a message body.
func ValidateContent(content string) error {
	if content == "" {
		return errors.New("content required")
	}

	if len(content) > MaxContentBytes {
		return errors.New("content is too long (max 100 KiB)")
	}

	return nil
}
