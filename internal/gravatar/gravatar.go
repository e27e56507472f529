package gravatar

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/yigitates17/Article-App/internal/config"
)

const baseURL = "https://www.gravatar.com/avatar/"

var (
	validDefaults = map[string]bool{
		"404":       true,
		"mp":        true,
		"identicon": true,
		"monsterid": true,
		"wavatar":   true,
		"retro":     true,
		"robohash":  true,
		"blank":     true,
	}
	validRatings = map[string]bool{
		"g":  true,
		"pg": true,
		"r":  true,
		"x":  true,
	}
)

// Resolver builds avatar URLs for user emails.
// A nil or disabled Resolver returns empty URLs.
type Resolver struct {
	params url.Values
}

// New validates cfg and returns a Resolver. It returns nil if Gravatar is disabled.
func New(cfg *config.GravatarConfig) (*Resolver, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	params := url.Values{}
	if cfg.DefaultImage != "" {
		if !IsValidDefaultImage(cfg.DefaultImage) {
			return nil, fmt.Errorf("invalid gravatar default image %q", cfg.DefaultImage)
		}
		params.Set("d", cfg.DefaultImage)
	}
	if cfg.Rating != "" {
		if !IsValidRating(cfg.Rating) {
			return nil, fmt.Errorf("invalid gravatar rating %q", cfg.Rating)
		}
		params.Set("r", cfg.Rating)
	}
	if cfg.Size != 0 {
		if !IsValidSize(cfg.Size) {
			return nil, fmt.Errorf("invalid gravatar size %d", cfg.Size)
		}
		params.Set("s", strconv.Itoa(cfg.Size))
	}

	return &Resolver{params: params}, nil
}

// URL returns the avatar URL for email, or "" if r is nil or email is empty.
func (r *Resolver) URL(email string) string {
	if r == nil {
		return ""
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return ""
	}

	hash := sha256.Sum256([]byte(email))
	u := baseURL + hex.EncodeToString(hash[:])
	if len(r.params) > 0 {
		u += "?" + r.params.Encode()
	}
	return u
}

// IsValidDefaultImage checks if the provided default image value is valid for Gravatar.
func IsValidDefaultImage(defaultImage string) bool {
	return validDefaults[defaultImage]
}

// IsValidRating checks if the provided rating value is valid for Gravatar.
func IsValidRating(rating string) bool {
	return validRatings[rating]
}

// IsValidSize checks if the provided size value is valid for Gravatar (1-2048 pixels).
func IsValidSize(size int) bool {
	return size >= 1 && size <= 2048
}
