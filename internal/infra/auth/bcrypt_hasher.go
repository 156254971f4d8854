package auth

import (
	"strings"
	"unicode"

	"gazexpress/config"
	"gazexpress/internal/domain/service"
	"gazexpress/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

const defaultMinPasswordLength = 8

// commonPasswords are rejected outright.
var commonPasswords = map[string]struct{}{
	"password":   {},
	"motdepasse": {},
	"12345678":   {},
	"123456789":  {},
	"azertyuiop": {},
	"qwertyuiop": {},
	"gazexpress": {},
	"password1":  {},
	"00000000":   {},
	"11111111":   {},
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from configuration.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	strength := config.PasswordStrengthConfig{MinLength: defaultMinPasswordLength, ForbidNumeric: true}
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithCost(cost, strength)
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and strength policy.
func NewBcryptHasherWithCost(cost int, strength config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if strength.MinLength <= 0 {
		strength.MinLength = defaultMinPasswordLength
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength reports the first rule the password breaks.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := len([]rune(password))
	if length < h.strength.MinLength {
		return errors.Errorf("Ce mot de passe est trop court. Il doit contenir au minimum %d caractères.", h.strength.MinLength)
	}
	if h.strength.MaxLength > 0 && length > h.strength.MaxLength {
		return errors.Errorf("Ce mot de passe est trop long. Il doit contenir au maximum %d caractères.", h.strength.MaxLength)
	}
	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		return errors.New("Ce mot de passe est trop courant.")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	if h.strength.ForbidNumeric && hasNumber && !hasUpper && !hasLower && !hasSpecial {
		return errors.New("Ce mot de passe est entièrement numérique.")
	}
	if h.strength.RequireUppercase && !hasUpper {
		return errors.New("Le mot de passe doit contenir au moins une majuscule.")
	}
	if h.strength.RequireLowercase && !hasLower {
		return errors.New("Le mot de passe doit contenir au moins une minuscule.")
	}
	if h.strength.RequireNumbers && !hasNumber {
		return errors.New("Le mot de passe doit contenir au moins un chiffre.")
	}
	if h.strength.RequireSpecial && !hasSpecial {
		return errors.New("Le mot de passe doit contenir au moins un caractère spécial.")
	}

	return nil
}
